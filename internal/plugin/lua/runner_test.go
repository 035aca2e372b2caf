package lua

import (
	"os"
	"path/filepath"
	"testing"

	lualib "github.com/yuin/gopher-lua"

	"github.com/dshills/isoconv/internal/convert"
	"github.com/dshills/isoconv/internal/format"
	"github.com/dshills/isoconv/internal/plugin/api"
)

func newRunner(t *testing.T) *Runner {
	t.Helper()
	m := api.NewISOModule(format.Builtin(convert.Conservative), convert.Conservative)
	r, err := NewRunner(m)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}
	t.Cleanup(r.Close)
	return r
}

func TestRunnerDoString(t *testing.T) {
	r := newRunner(t)

	if err := r.DoString(`result = iso.convert("K&auml;se", "sgml2iso")`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	v := r.Global("result")
	if got := lualib.LVAsString(v); got != "Käse" {
		t.Errorf("result = %q, want %q", got, "Käse")
	}
}

func TestRunnerDoFile(t *testing.T) {
	r := newRunner(t)

	path := filepath.Join(t.TempDir(), "script.lua")
	script := `converted = iso.convert("na\\\"\\i ve", "tex2iso")` + "\n"
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := r.DoFile(path); err != nil {
		t.Fatalf("DoFile() error = %v", err)
	}
	if got := lualib.LVAsString(r.Global("converted")); got != "naïve" {
		t.Errorf("converted = %q, want %q", got, "naïve")
	}
}

func TestRunnerScriptError(t *testing.T) {
	r := newRunner(t)

	if err := r.DoString(`this is not lua`); err == nil {
		t.Error("DoString() with invalid source should fail")
	}
}

func TestRunnerClosed(t *testing.T) {
	r := newRunner(t)
	r.Close()
	r.Close() // second close is a no-op

	if err := r.DoString(`x = 1`); err != ErrRunnerClosed {
		t.Errorf("DoString() after Close = %v, want ErrRunnerClosed", err)
	}
	if err := r.DoFile("nope.lua"); err != ErrRunnerClosed {
		t.Errorf("DoFile() after Close = %v, want ErrRunnerClosed", err)
	}
	if v := r.Global("x"); v != lualib.LNil {
		t.Errorf("Global() after Close = %v, want nil", v)
	}
}
