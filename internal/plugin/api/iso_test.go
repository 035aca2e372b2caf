package api

import (
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/isoconv/internal/convert"
	"github.com/dshills/isoconv/internal/format"
)

func newState(t *testing.T, strict convert.Strictness) *lua.LState {
	t.Helper()
	L := lua.NewState()
	t.Cleanup(L.Close)

	m := NewISOModule(format.Builtin(strict), strict)
	if err := m.Register(L); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return L
}

// evalString runs a script that must assign its result to global `out`.
func evalString(t *testing.T, L *lua.LState, script string) string {
	t.Helper()
	if err := L.DoString(script); err != nil {
		t.Fatalf("DoString(%q) error = %v", script, err)
	}
	v := L.GetGlobal("out")
	s, ok := v.(lua.LString)
	if !ok {
		t.Fatalf("global out = %v (%T), want string", v, v)
	}
	return string(s)
}

func TestLuaConvert(t *testing.T) {
	L := newState(t, convert.Conservative)

	got := evalString(t, L, `out = iso.convert("schön", "iso2tex")`)
	if got != `sch{\"o}n` {
		t.Errorf("iso.convert iso2tex = %q, want %q", got, `sch{\"o}n`)
	}

	got = evalString(t, L, `out = iso.convert('Gr"u"se', "german2iso", "aggressive")`)
	if got != "Grüße" {
		t.Errorf("iso.convert german2iso aggressive = %q, want %q", got, "Grüße")
	}
}

func TestLuaConvertUnknownDirection(t *testing.T) {
	L := newState(t, convert.Conservative)

	err := L.DoString(`iso.convert("x", "klingon2iso")`)
	if err == nil || !strings.Contains(err.Error(), "klingon2iso") {
		t.Errorf("expected unknown-direction error naming the input, got %v", err)
	}
}

func TestLuaDirections(t *testing.T) {
	L := newState(t, convert.Conservative)

	if err := L.DoString(`out = table.concat(iso.directions(), ",")`); err != nil {
		t.Fatalf("DoString error = %v", err)
	}
	got := string(L.GetGlobal("out").(lua.LString))

	for _, want := range []string{"tex2iso", "iso2tex", "german2iso", "sgml2iso", "iso2duden"} {
		if !strings.Contains(got, want) {
			t.Errorf("iso.directions() = %q, missing %q", got, want)
		}
	}
}

func TestLuaDecodeEncode(t *testing.T) {
	L := newState(t, convert.Conservative)

	got := evalString(t, L, `out = iso.decode("K&auml;se", "sgml")`)
	if got != "Käse" {
		t.Errorf("iso.decode sgml = %q, want %q", got, "Käse")
	}

	got = evalString(t, L, `out = iso.encode("Käse", "sgml")`)
	if got != "K&auml;se" {
		t.Errorf("iso.encode sgml = %q, want %q", got, "K&auml;se")
	}
}

func TestLuaEncodeReadOnlyFormat(t *testing.T) {
	L := newState(t, convert.Conservative)

	err := L.DoString(`iso.encode("x", "spanish")`)
	if err == nil || !strings.Contains(err.Error(), "read-only") {
		t.Errorf("expected read-only error, got %v", err)
	}
}

func TestLuaDetect(t *testing.T) {
	L := newState(t, convert.Conservative)

	got := evalString(t, L, `out = iso.detect("Br{\\\"u}cke") or "none"`)
	if got != "gtex" && got != "tex" {
		t.Errorf("iso.detect = %q, want a TeX format", got)
	}

	got = evalString(t, L, `out = iso.detect("plain ascii") or "none"`)
	if got != "none" {
		t.Errorf("iso.detect on plain text = %q, want none", got)
	}
}

func TestLuaRegisterAndApply(t *testing.T) {
	L := newState(t, convert.Conservative)

	got := evalString(t, L, `
iso.register("arrows", {{"->", "→"}})
out = iso.apply("a -> b", "arrows")`)
	if got != "a → b" {
		t.Errorf("iso.apply = %q, want %q", got, "a → b")
	}
}

func TestLuaRegisterInvalidPattern(t *testing.T) {
	L := newState(t, convert.Conservative)

	err := L.DoString(`iso.register("broken", {{"[", "x"}})`)
	if err == nil || !strings.Contains(err.Error(), "pattern") {
		t.Errorf("expected pattern error, got %v", err)
	}
}

func TestLuaApplyUnknownTable(t *testing.T) {
	L := newState(t, convert.Conservative)

	err := L.DoString(`iso.apply("x", "nothere")`)
	if err == nil || !strings.Contains(err.Error(), "nothere") {
		t.Errorf("expected unknown-table error, got %v", err)
	}
}
