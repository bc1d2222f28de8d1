package fallible_test

import (
	"fmt"

	"github.com/jmgilman/fallible"
	"github.com/jmgilman/fallible/fault"
)

const kindTargetOccupied fault.Kind = "TARGET_OCCUPIED"

// reserve is a fallible operation: it claims a name in a set, failing with
// kindTargetOccupied when the name is taken. "" is its no-result sentinel.
func reserve(taken map[string]bool, name string, dst *fallible.Slot) string {
	fallible.Arm(dst)
	if taken[name] {
		fallible.Report(dst, fault.WithDetail(
			fault.New(kindTargetOccupied, "name already reserved"), "name", name))
		return ""
	}
	taken[name] = true
	return name
}

func ExampleSlot() {
	taken := map[string]bool{"reports": true}

	// Supplying a slot selects the capture channel: the failure lands in
	// the slot and control continues on the next statement.
	slot := fallible.NewSlot(kindTargetOccupied)
	name := reserve(taken, "reports", slot)

	if !slot.IsEmpty() {
		v := slot.Read()
		fmt.Printf("sentinel=%q kind=%s name=%v\n", name, v.Kind(), v.Detail()["name"])
	}
	// Output: sentinel="" kind=TARGET_OCCUPIED name=reports
}

func ExampleCatch() {
	taken := map[string]bool{"reports": true}

	// Passing nil selects the raise channel: the failure unwinds to the
	// nearest boundary, and the statements after the call never run.
	err := func() (err error) {
		defer fallible.Catch(&err)
		name := reserve(taken, "reports", nil)
		fmt.Println("never printed:", name)
		return nil
	}()

	fmt.Println(fault.KindOf(err))
	// Output: TARGET_OCCUPIED
}

func ExampleSlot_success() {
	taken := map[string]bool{}

	// On success the result is identical on both channels and a supplied
	// slot stays empty.
	slot := fallible.NewSlot()
	name := reserve(taken, "metrics", slot)

	fmt.Printf("name=%q empty=%v\n", name, slot.IsEmpty())
	// Output: name="metrics" empty=true
}

func ExampleSlot_Reset() {
	taken := map[string]bool{"a": true, "b": true}

	// A slot is single-write; explicit Reset permits reuse across calls.
	slot := fallible.NewSlot()
	for _, name := range []string{"a", "b", "c"} {
		reserve(taken, name, slot)
		if !slot.IsEmpty() {
			fmt.Println("taken:", name)
			slot.Reset()
		}
	}
	// Output:
	// taken: a
	// taken: b
}

func ExampleSlot_Err() {
	taken := map[string]bool{"reports": true}

	slot := fallible.NewSlot()
	reserve(taken, "reports", slot)

	// Err is the soft accessor: nil when empty, the fault otherwise.
	if err := slot.Err(); err != nil {
		fmt.Println(err)
	}
	// Output: [TARGET_OCCUPIED] name already reserved
}

func ExampleCall() {
	parse := func() (int, error) {
		return 0, fmt.Errorf("malformed header")
	}

	// Call bridges a conventional (T, error) function onto the protocol.
	slot := fallible.NewSlot()
	n := fallible.Call(slot, parse)

	fmt.Printf("sentinel=%d kind=%s\n", n, fault.KindOf(slot.Err()))
	// Output: sentinel=0 kind=UNKNOWN
}
