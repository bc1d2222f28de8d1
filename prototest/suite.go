// Package prototest provides a conformance test suite for validating
// fallible operations against the call protocol contracts.
//
// The suite checks the laws every fallible operation must honor: failures
// raise without a slot and capture with one, success is identical on both
// channels and leaves a supplied slot empty, captured faults carry the
// operation's declared kind, and the documented no-result sentinel comes
// back with every captured failure.
//
// Example usage:
//
//	func TestCreateUniqueFileContract(t *testing.T) {
//	    prototest.TestOperation(t, prototest.Operation{
//	        Name: "CreateUniqueFile",
//	        Kind: KindDirectoryAlreadyExists,
//	        Succeed: func(dst *fallible.Slot) interface{} {
//	            return CreateUniqueFile(memfs.New(), "/data/new.txt", []byte("x"), dst)
//	        },
//	        Fail: func(dst *fallible.Slot) interface{} {
//	            fs := seeded()
//	            return CreateUniqueFile(fs, "/data/taken.txt", []byte("x"), dst)
//	        },
//	        Sentinel: "",
//	    })
//	}
package prototest

import (
	"reflect"
	"testing"

	"github.com/jmgilman/fallible"
	"github.com/jmgilman/fallible/fault"
)

// Operation adapts one fallible operation to the conformance suite.
//
// Succeed and Fail run the operation against inputs known to succeed or to
// fail with Kind; both forward dst to the operation and return its result.
// Each call must run against fresh state: the suite invokes them multiple
// times and expects the same outcome every time.
type Operation struct {
	// Name identifies the operation in failure messages.
	Name string

	// Kind is the fault kind Fail produces.
	Kind fault.Kind

	// Succeed runs the operation with inputs that succeed.
	Succeed func(dst *fallible.Slot) interface{}

	// Fail runs the operation with inputs that fail with Kind.
	Fail func(dst *fallible.Slot) interface{}

	// Sentinel is the operation's documented no-result value, returned
	// alongside every captured failure. It must carry the operation's
	// result type: []byte(nil) rather than a bare nil.
	Sentinel interface{}

	// SkipTests lists law names to skip for operations with documented
	// deviations (e.g. "SuccessResultIdentity").
	SkipTests []string
}

// TestOperation runs the protocol law suite against one operation.
func TestOperation(t *testing.T, op Operation) {
	shouldSkip := func(name string) bool {
		for _, skip := range op.SkipTests {
			if skip == name {
				return true
			}
		}
		return false
	}

	t.Run("RaiseWithoutSlot", func(t *testing.T) {
		if shouldSkip("RaiseWithoutSlot") {
			t.Skip("Skipped by operation configuration")
			return
		}
		testRaiseWithoutSlot(t, op)
	})
	t.Run("CaptureWithSlot", func(t *testing.T) {
		if shouldSkip("CaptureWithSlot") {
			t.Skip("Skipped by operation configuration")
			return
		}
		testCaptureWithSlot(t, op)
	})
	t.Run("SuccessResultIdentity", func(t *testing.T) {
		if shouldSkip("SuccessResultIdentity") {
			t.Skip("Skipped by operation configuration")
			return
		}
		testSuccessResultIdentity(t, op)
	})
	t.Run("SlotEmptyOnSuccess", func(t *testing.T) {
		if shouldSkip("SlotEmptyOnSuccess") {
			t.Skip("Skipped by operation configuration")
			return
		}
		testSlotEmptyOnSuccess(t, op)
	})
	t.Run("InspectionIdempotence", func(t *testing.T) {
		if shouldSkip("InspectionIdempotence") {
			t.Skip("Skipped by operation configuration")
			return
		}
		testInspectionIdempotence(t, op)
	})
	t.Run("ConstrainedSlotCapture", func(t *testing.T) {
		if shouldSkip("ConstrainedSlotCapture") {
			t.Skip("Skipped by operation configuration")
			return
		}
		testConstrainedSlotCapture(t, op)
	})
}

// testRaiseWithoutSlot verifies a failing call with no slot raises a fault
// of the declared kind.
func testRaiseWithoutSlot(t *testing.T, op Operation) {
	RequireRaise(t, op.Kind, func() {
		op.Fail(nil)
	})
}

// testCaptureWithSlot verifies a failing call with a slot captures the
// declared kind, returns the sentinel, and raises nothing.
func testCaptureWithSlot(t *testing.T, op Operation) {
	slot := fallible.NewSlot()

	got := op.Fail(slot)

	if slot.IsEmpty() {
		t.Fatalf("%s: slot empty after failing call", op.Name)
	}
	v := slot.Read()
	if v.Kind() != op.Kind {
		t.Errorf("%s: captured kind = %s, want %s", op.Name, v.Kind(), op.Kind)
	}
	if !equalResult(got, op.Sentinel) {
		t.Errorf("%s: result with captured failure = %#v, want sentinel %#v", op.Name, got, op.Sentinel)
	}
}

// testSuccessResultIdentity verifies success returns the same result on
// both channels.
func testSuccessResultIdentity(t *testing.T, op Operation) {
	withSlot := op.Succeed(fallible.NewSlot())
	withoutSlot := op.Succeed(nil)

	if !equalResult(withSlot, withoutSlot) {
		t.Errorf("%s: success result differs across channels: with slot %#v, without %#v",
			op.Name, withSlot, withoutSlot)
	}
}

// testSlotEmptyOnSuccess verifies a successful call leaves a supplied slot
// empty.
func testSlotEmptyOnSuccess(t *testing.T, op Operation) {
	slot := fallible.NewSlot()

	op.Succeed(slot)

	if !slot.IsEmpty() {
		t.Fatalf("%s: slot not empty after successful call: %v", op.Name, slot.Err())
	}
	if err := slot.Err(); err != nil {
		t.Errorf("%s: Err() = %v after successful call, want nil", op.Name, err)
	}
}

// testInspectionIdempotence verifies a captured fault can be inspected
// repeatedly without being consumed.
func testInspectionIdempotence(t *testing.T, op Operation) {
	slot := fallible.NewSlot()
	op.Fail(slot)

	if slot.IsEmpty() {
		t.Fatalf("%s: slot empty after failing call", op.Name)
	}

	first := slot.Read()
	second := slot.Read()
	if first != second {
		t.Errorf("%s: repeated reads returned different faults: %v, %v", op.Name, first, second)
	}
	if slot.IsEmpty() {
		t.Errorf("%s: reading consumed the fault", op.Name)
	}
	if slot.Err() == nil {
		t.Errorf("%s: Err() = nil while holding a fault", op.Name)
	}
}

// testConstrainedSlotCapture verifies a slot constrained to the declared
// kind still captures it.
func testConstrainedSlotCapture(t *testing.T, op Operation) {
	slot := fallible.NewSlot(op.Kind)

	got := op.Fail(slot)

	if slot.IsEmpty() {
		t.Fatalf("%s: constrained slot empty after failing call", op.Name)
	}
	if v := slot.Read(); v.Kind() != op.Kind {
		t.Errorf("%s: captured kind = %s, want %s", op.Name, v.Kind(), op.Kind)
	}
	if !equalResult(got, op.Sentinel) {
		t.Errorf("%s: result = %#v, want sentinel %#v", op.Name, got, op.Sentinel)
	}
}

// equalResult compares operation results, tolerating nil against nil.
func equalResult(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	return reflect.DeepEqual(a, b)
}
