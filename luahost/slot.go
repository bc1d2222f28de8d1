package luahost

import (
	"github.com/Shopify/go-lua"

	"github.com/jmgilman/fallible"
	"github.com/jmgilman/fallible/fault"
)

const slotTypeName = "fallible.slot"

// registerSlotType installs the slot metatable with its method table.
func (h *Host) registerSlotType() {
	lua.NewMetaTable(h.state, slotTypeName)
	h.state.NewTable()
	lua.SetFunctions(h.state, []lua.RegistryFunction{
		{Name: "is_empty", Function: h.slotIsEmpty},
		{Name: "read", Function: h.slotRead},
		{Name: "reset", Function: h.slotReset},
	}, 0)
	h.state.SetField(-2, "__index")
	h.state.Pop(1)
}

// registerSlotConstructor installs the slot global. Scripts call slot() for
// an unconstrained slot, or slot("KIND_A", "KIND_B") to declare the kinds
// the slot admits.
func (h *Host) registerSlotConstructor() {
	h.state.PushGoFunction(slotNew)
	h.state.SetGlobal("slot")
}

func slotNew(state *lua.State) int {
	kinds := make([]fault.Kind, 0, state.Top())
	for i := 1; i <= state.Top(); i++ {
		kinds = append(kinds, fault.Kind(lua.CheckString(state, i)))
	}
	state.PushUserData(fallible.NewSlot(kinds...))
	lua.SetMetaTableNamed(state, slotTypeName)
	return 1
}

func (h *Host) slotIsEmpty(state *lua.State) int {
	return h.guard(state, "slot:is_empty", func() int {
		state.PushBoolean(checkSlot(state).IsEmpty())
		return 1
	})
}

// slotRead returns the captured fault's kind, message, and detail table.
// Reading an empty slot is protocol misuse and aborts the script.
func (h *Host) slotRead(state *lua.State) int {
	return h.guard(state, "slot:read", func() int {
		v := checkSlot(state).Read()
		state.PushString(string(v.Kind()))
		state.PushString(v.Message())
		if detail := v.Detail(); detail != nil {
			pushValue(state, detail)
		} else {
			state.PushNil()
		}
		return 3
	})
}

func (h *Host) slotReset(state *lua.State) int {
	return h.guard(state, "slot:reset", func() int {
		checkSlot(state).Reset()
		return 0
	})
}

func checkSlot(state *lua.State) *fallible.Slot {
	ud := lua.CheckUserData(state, 1, slotTypeName)
	if slot, ok := ud.(*fallible.Slot); ok && slot != nil {
		return slot
	}
	lua.ArgumentError(state, 1, "slot expected")
	return nil
}
