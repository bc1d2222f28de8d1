// Package luahost embeds a Lua interpreter and exposes fallible operations
// to scripts with the same channel selection Go callers get.
//
// A registered operation is called from Lua like any function. Passing a
// slot as the final argument selects capture mode; omitting it selects
// raise mode, where the fault surfaces as a Lua error that pcall can
// observe. Slots are created in scripts with the slot global:
//
//	local s = slot()
//	local data = read_data("/notes/a.txt", s)
//	if not s:is_empty() then
//	    local kind, msg = s:read()
//	    print(kind, msg)
//	end
//
// Protocol misuse is different from operation failure and does not become
// a Lua error the script can absorb. The script is aborted, and once
// control returns to the embedder, Run panics with the misuse. A pcall
// inside the script may observe the abort, but the embedding program
// still sees the panic.
package luahost

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Shopify/go-lua"

	"github.com/jmgilman/fallible"
)

// Op is a fallible operation callable from Lua. Arguments arrive converted
// from Lua values; dst is the slot the script supplied as the final
// argument, or nil when the script selected raise mode.
type Op func(args []interface{}, dst *fallible.Slot) interface{}

// Host is an embedded Lua interpreter with fallible operations registered
// as globals. A Host is not safe for concurrent use.
type Host struct {
	state  *lua.State
	logger *slog.Logger

	// misuse parks a protocol violation recovered at the Go/Lua boundary
	// until control returns to Run, which re-panics it.
	misuse *fallible.Misuse
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithHostLogger sets the logger used for script diagnostics. Passing nil
// keeps the default.
func WithHostLogger(logger *slog.Logger) HostOption {
	return func(h *Host) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHost returns a Host with the standard Lua libraries opened and the
// slot constructor installed.
func NewHost(opts ...HostOption) *Host {
	h := &Host{
		state:  lua.NewState(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}

	lua.OpenLibraries(h.state)
	h.registerSlotType()
	h.registerSlotConstructor()
	return h
}

// Unwrap returns the underlying Lua state for direct use.
func (h *Host) Unwrap() *lua.State {
	return h.state
}

// Register installs op as a Lua global callable under name. The script
// selects the error channel per call: a slot passed as the final argument
// captures, no slot raises a Lua error carrying the fault's kind and
// message.
func (h *Host) Register(name string, op Op) {
	h.state.PushGoFunction(func(state *lua.State) int {
		return h.guard(state, name, func() int {
			args, dst := splitCallArgs(state)
			return pushValue(state, op(args, dst))
		})
	})
	h.state.SetGlobal(name)
	h.logger.Debug("registered operation", "op", name)
}

// Run loads and executes src. Operation faults raised by the script come
// back as an error; protocol misuse panics.
func (h *Host) Run(src string) error {
	if err := lua.LoadString(h.state, src); err != nil {
		return fmt.Errorf("load script: %w", err)
	}
	return h.protectedRun()
}

// RunFile loads and executes the script at path.
func (h *Host) RunFile(path string) error {
	if err := lua.LoadFile(h.state, path, ""); err != nil {
		return fmt.Errorf("load script: %w", err)
	}
	return h.protectedRun()
}

func (h *Host) protectedRun() error {
	err := h.state.ProtectedCall(0, 0, 0)
	if m := h.misuse; m != nil {
		h.misuse = nil
		panic(m)
	}
	if err != nil {
		return fmt.Errorf("run script: %w", err)
	}
	return nil
}

// guard runs fn, translating a raised fault into a Lua error and parking
// protocol misuse for protectedRun to re-panic. Panics that are neither
// propagate untouched. Once misuse is parked the host is poisoned: no
// further operation body runs.
func (h *Host) guard(state *lua.State, name string, fn func() int) int {
	if h.misuse != nil {
		lua.Errorf(state, "%s", h.misuse.Error())
		return 0
	}

	var raised *fallible.Raised
	pushed := func() (n int) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			switch p := r.(type) {
			case fallible.Raised:
				raised = &p
				n = 0
			case *fallible.Misuse:
				h.misuse = p
				n = 0
			default:
				panic(r)
			}
		}()
		return fn()
	}()

	if h.misuse != nil {
		h.logger.Error("protocol misuse in script", "op", name, "misuse", h.misuse.Error())
		lua.Errorf(state, "%s", h.misuse.Error())
		return 0
	}
	if raised != nil {
		h.logger.Debug("operation raised", "op", name, "kind", string(raised.Value.Kind()))
		lua.Errorf(state, "%s", raised.Value.Error())
		return 0
	}
	return pushed
}
