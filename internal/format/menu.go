package format

// MenuItem is one synthesized menu entry. ID is the registered format's ID,
// so hosts can correlate items across menus.
type MenuItem struct {
	ID     string // format registration ID
	Label  string // format description
	Format string // format name
	Action string // OpDecode or OpEncode
}

// Menu is one synthesized menu group.
type Menu struct {
	Title string
	Items []MenuItem
}

// Menus synthesizes the host menu tree from a registry. It is a pure
// function of the registry contents: decode-capable formats appear under
// "Translate from" and "Load As", encode-capable ones under "Translate to"
// and "Write As". Rendering and key binding are the host's concern.
func Menus(r *Registry) []Menu {
	formats := r.Formats()

	var from, to []MenuItem
	for _, f := range formats {
		item := MenuItem{ID: f.ID(), Label: f.Description, Format: f.Name}
		if f.CanDecode() {
			item.Action = OpDecode
			from = append(from, item)
		}
		if f.CanEncode() {
			item.Action = OpEncode
			to = append(to, item)
		}
	}

	// Each menu gets its own item slice so hosts can mutate one group
	// without affecting its twin.
	return []Menu{
		{Title: "Translate from", Items: from},
		{Title: "Translate to", Items: to},
		{Title: "Load As", Items: append([]MenuItem(nil), from...)},
		{Title: "Write As", Items: append([]MenuItem(nil), to...)},
	}
}
