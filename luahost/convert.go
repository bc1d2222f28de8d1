package luahost

import (
	"math"

	"github.com/Shopify/go-lua"

	"github.com/jmgilman/fallible"
)

// splitCallArgs converts the call stack into Go arguments, peeling off a
// trailing slot when the script supplied one.
func splitCallArgs(state *lua.State) ([]interface{}, *fallible.Slot) {
	top := state.Top()
	var dst *fallible.Slot
	if top > 0 {
		if slot, ok := toSlot(state, top); ok {
			dst = slot
			top--
		}
	}

	args := make([]interface{}, 0, top)
	for i := 1; i <= top; i++ {
		args = append(args, luaToGo(state, i))
	}
	return args, dst
}

func toSlot(state *lua.State, index int) (*fallible.Slot, bool) {
	if state.TypeOf(index) != lua.TypeUserData {
		return nil, false
	}
	slot, ok := state.ToUserData(index).(*fallible.Slot)
	return slot, ok
}

func luaToGo(state *lua.State, index int) interface{} {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		return normalizeNumber(value)
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeTable:
		return tableToGo(state, index)
	case lua.TypeUserData:
		return state.ToUserData(index)
	default:
		return nil
	}
}

// tableToGo converts a table to a []interface{} when its keys form the
// sequence 1..n, and to a map[string]interface{} otherwise.
func tableToGo(state *lua.State, index int) interface{} {
	if state.TypeOf(index) != lua.TypeTable {
		return nil
	}

	index = state.AbsIndex(index)
	isArray := true
	maxIndex := 0
	count := 0
	state.PushNil()
	for state.Next(index) {
		if isArray {
			if state.TypeOf(-2) != lua.TypeNumber {
				isArray = false
			} else if idx, ok := state.ToInteger(-2); ok && idx > 0 {
				count++
				if idx > maxIndex {
					maxIndex = idx
				}
			} else {
				isArray = false
			}
		}
		state.Pop(1)
	}

	if isArray && count > 0 && maxIndex == count {
		result := make([]interface{}, 0, maxIndex)
		for i := 1; i <= maxIndex; i++ {
			state.RawGetInt(index, i)
			result = append(result, luaToGo(state, -1))
			state.Pop(1)
		}
		return result
	}

	return tableToMap(state, index)
}

func tableToMap(state *lua.State, index int) map[string]interface{} {
	output := map[string]interface{}{}
	if state.TypeOf(index) != lua.TypeTable {
		return output
	}

	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return output
}

// normalizeNumber collapses integral Lua numbers to int so operations see
// whole numbers without float noise.
func normalizeNumber(value float64) interface{} {
	if math.Mod(value, 1) == 0 {
		return int(value)
	}
	return value
}

// pushValue pushes a Go value as its Lua counterpart and reports how many
// values were pushed.
func pushValue(state *lua.State, value interface{}) int {
	switch v := value.(type) {
	case nil:
		state.PushNil()
	case bool:
		state.PushBoolean(v)
	case int:
		state.PushInteger(v)
	case int64:
		state.PushInteger(int(v))
	case float64:
		state.PushNumber(v)
	case string:
		state.PushString(v)
	case []byte:
		state.PushString(string(v))
	case []string:
		state.NewTable()
		for i, elem := range v {
			state.PushString(elem)
			state.RawSetInt(-2, i+1)
		}
	case []interface{}:
		state.NewTable()
		for i, elem := range v {
			pushValue(state, elem)
			state.RawSetInt(-2, i+1)
		}
	case map[string]interface{}:
		state.NewTable()
		for key, elem := range v {
			pushValue(state, elem)
			state.SetField(-2, key)
		}
	default:
		state.PushUserData(v)
	}
	return 1
}
