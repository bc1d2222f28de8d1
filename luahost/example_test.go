package luahost_test

import (
	"fmt"

	"github.com/jmgilman/fallible"
	"github.com/jmgilman/fallible/fault"
	"github.com/jmgilman/fallible/luahost"
)

const kindNameTaken fault.Kind = "NAME_TAKEN"

func reserveOp(args []interface{}, dst *fallible.Slot) interface{} {
	fallible.Arm(dst)
	fallible.Report(dst, fault.New(kindNameTaken, "name taken"))
	return false
}

func emitOp(args []interface{}, dst *fallible.Slot) interface{} {
	fmt.Println(args...)
	return nil
}

func ExampleHost() {
	host := luahost.NewHost()
	host.Register("reserve", reserveOp)
	host.Register("emit", emitOp)

	err := host.Run(`
		local s = slot()
		reserve("alpha", s)
		local kind, msg = s:read()
		emit(kind, msg)
	`)
	if err != nil {
		fmt.Println("script error:", err)
	}
	// Output:
	// NAME_TAKEN name taken
}

func ExampleHost_raise() {
	host := luahost.NewHost()
	host.Register("reserve", reserveOp)
	host.Register("emit", emitOp)

	err := host.Run(`
		local ok = pcall(function() reserve("alpha") end)
		emit("caught by pcall:", ok)
	`)
	if err != nil {
		fmt.Println("script error:", err)
	}
	// Output:
	// caught by pcall: false
}
