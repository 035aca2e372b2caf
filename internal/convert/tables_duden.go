package convert

// ISOToDudenTab rewrites German umlauts and sharp s to the Duden ASCII
// transliteration (ae, oe, ue, ss). The transform is lossy; there is no
// reverse table, since "ue" in arbitrary German text is ambiguous.
var ISOToDudenTab = MustTable("iso2duden", []Rule{
	{"ä", "ae"},
	{"ö", "oe"},
	{"ü", "ue"},
	{"ß", "ss"},
	{"Ä", "Ae"},
	{"Ö", "Oe"},
	{"Ü", "Ue"},
})
