package api

import (
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/isoconv/internal/convert"
	"github.com/dshills/isoconv/internal/engine/buffer"
	"github.com/dshills/isoconv/internal/format"
)

// ISOModule implements the iso Lua API module.
type ISOModule struct {
	registry *format.Registry
	strict   convert.Strictness

	mu     sync.RWMutex
	custom map[string]*convert.Table
}

// NewISOModule creates the iso module. The registry backs decode,
// encode and detect; strict is the default German decoding strictness.
func NewISOModule(registry *format.Registry, strict convert.Strictness) *ISOModule {
	return &ISOModule{
		registry: registry,
		strict:   strict,
		custom:   make(map[string]*convert.Table),
	}
}

// Name returns the module name.
func (m *ISOModule) Name() string {
	return "iso"
}

// Register registers the module into the Lua state.
func (m *ISOModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "convert", L.NewFunction(m.convert))
	L.SetField(mod, "directions", L.NewFunction(m.directions))
	L.SetField(mod, "decode", L.NewFunction(m.decode))
	L.SetField(mod, "encode", L.NewFunction(m.encode))
	L.SetField(mod, "detect", L.NewFunction(m.detect))
	L.SetField(mod, "formats", L.NewFunction(m.formats))
	L.SetField(mod, "register", L.NewFunction(m.register))
	L.SetField(mod, "apply", L.NewFunction(m.apply))

	L.SetGlobal("iso", mod)
	return nil
}

// convert(text, direction [, strictness]) -> string
// Converts text using a builtin direction name.
func (m *ISOModule) convert(L *lua.LState) int {
	text := L.CheckString(1)
	name := L.CheckString(2)

	dir, err := convert.ParseDirection(name)
	if err != nil {
		L.RaiseError("convert: %v", err)
		return 0
	}

	strict := m.strict
	if L.GetTop() >= 3 {
		s, err := convert.ParseStrictness(L.CheckString(3))
		if err != nil {
			L.RaiseError("convert: %v", err)
			return 0
		}
		strict = s
	}

	tab, err := convert.TableFor(dir, strict)
	if err != nil {
		L.RaiseError("convert: %v", err)
		return 0
	}

	out, err := applyToString(text, tab)
	if err != nil {
		L.RaiseError("convert: %v", err)
		return 0
	}

	L.Push(lua.LString(out))
	return 1
}

// directions() -> table
// Returns the builtin direction names as an array.
func (m *ISOModule) directions(L *lua.LState) int {
	t := L.NewTable()
	for _, d := range convert.Directions() {
		t.Append(lua.LString(d.String()))
	}
	L.Push(t)
	return 1
}

// decode(text, format) -> string
// Decodes text from a registered format into ISO 8859-1.
func (m *ISOModule) decode(L *lua.LState) int {
	return m.viaFormat(L, format.OpDecode)
}

// encode(text, format) -> string
// Encodes ISO 8859-1 text into a registered format.
func (m *ISOModule) encode(L *lua.LState) int {
	return m.viaFormat(L, format.OpEncode)
}

func (m *ISOModule) viaFormat(L *lua.LState, op string) int {
	text := L.CheckString(1)
	name := L.CheckString(2)

	f, ok := m.registry.Lookup(name)
	if !ok {
		L.RaiseError("%s: unknown format %q", op, name)
		return 0
	}

	buf := buffer.NewBufferFromString(text)
	var err error
	if op == format.OpDecode {
		_, err = f.DecodeRegion(buf, 0, buf.Len())
	} else {
		_, err = f.EncodeRegion(buf, 0, buf.Len())
	}
	if err != nil {
		L.RaiseError("%s: %v", op, err)
		return 0
	}

	L.Push(lua.LString(buf.Text()))
	return 1
}

// detect(text) -> string or nil
// Returns the name of the first format whose detector matches.
func (m *ISOModule) detect(L *lua.LState) int {
	text := L.CheckString(1)

	f, ok := m.registry.DetectFormat(text)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(f.Name))
	return 1
}

// formats() -> table
// Returns the registered format names in registration order.
func (m *ISOModule) formats(L *lua.LState) int {
	t := L.NewTable()
	for _, f := range m.registry.Formats() {
		t.Append(lua.LString(f.Name))
	}
	L.Push(t)
	return 1
}

// register(name, rules)
// Registers a custom rule table. rules is an array of
// {pattern, replacement} pairs applied in order by apply().
func (m *ISOModule) register(L *lua.LState) int {
	name := L.CheckString(1)
	rules := L.CheckTable(2)

	var rs []convert.Rule
	var badIdx int
	rules.ForEach(func(k, v lua.LValue) {
		pair, ok := v.(*lua.LTable)
		if !ok || pair.Len() != 2 {
			if badIdx == 0 {
				if n, isNum := k.(lua.LNumber); isNum {
					badIdx = int(n)
				} else {
					badIdx = -1
				}
			}
			return
		}
		pattern := lua.LVAsString(pair.RawGetInt(1))
		repl := lua.LVAsString(pair.RawGetInt(2))
		rs = append(rs, convert.Rule{Pattern: pattern, Replacement: repl})
	})
	if badIdx != 0 {
		L.RaiseError("register: rule %d must be a {pattern, replacement} pair", badIdx)
		return 0
	}

	tab, err := convert.NewTable(name, rs)
	if err != nil {
		L.RaiseError("register: %v", err)
		return 0
	}

	m.mu.Lock()
	m.custom[name] = tab
	m.mu.Unlock()
	return 0
}

// apply(text, name) -> string
// Applies a custom table registered via register().
func (m *ISOModule) apply(L *lua.LState) int {
	text := L.CheckString(1)
	name := L.CheckString(2)

	m.mu.RLock()
	tab, ok := m.custom[name]
	m.mu.RUnlock()
	if !ok {
		L.RaiseError("apply: unknown table %q", name)
		return 0
	}

	out, err := applyToString(text, tab)
	if err != nil {
		L.RaiseError("apply: %v", err)
		return 0
	}

	L.Push(lua.LString(out))
	return 1
}

func applyToString(text string, tab *convert.Table) (string, error) {
	buf := buffer.NewBufferFromString(text)
	if _, err := convert.ApplyAll(buf, tab); err != nil {
		return "", err
	}
	return buf.Text(), nil
}
