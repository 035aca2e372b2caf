// Package lua hosts user scripts in an embedded Lua interpreter.
package lua

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// ErrRunnerClosed is returned when executing on a closed runner.
var ErrRunnerClosed = errors.New("runner is closed")

// Module is an API surface registered into the interpreter.
type Module interface {
	Name() string
	Register(L *lua.LState) error
}

// Runner owns a Lua state with the given modules registered. A Runner
// serializes script execution; create one per concurrent consumer.
type Runner struct {
	mu     sync.Mutex
	state  *lua.LState
	closed bool
}

// NewRunner creates a runner and registers the modules.
func NewRunner(modules ...Module) (*Runner, error) {
	L := lua.NewState()
	for _, m := range modules {
		if err := m.Register(L); err != nil {
			L.Close()
			return nil, fmt.Errorf("registering module %s: %w", m.Name(), err)
		}
	}
	return &Runner{state: L}, nil
}

// DoString executes a script from source.
func (r *Runner) DoString(source string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRunnerClosed
	}
	return r.state.DoString(source)
}

// DoFile executes a script file.
func (r *Runner) DoFile(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRunnerClosed
	}
	return r.state.DoFile(path)
}

// Global returns a global value from the interpreter, for reading back
// script results.
func (r *Runner) Global(name string) lua.LValue {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return lua.LNil
	}
	return r.state.GetGlobal(name)
}

// Close releases the Lua state. It is safe to call more than once.
func (r *Runner) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	r.state.Close()
}
