package fallible

import (
	"errors"
	"fmt"
)

// Sentinel violations for misuse of the fallible call protocol.
// These identify contract violations by the calling code, not failures of the
// operation itself. They can be checked using errors.Is() in recover sites
// and tests.
var (
	// ErrEmptySlotRead indicates a slot was read while holding no fault.
	// Callers must check IsEmpty before Read, or use Err.
	ErrEmptySlotRead = errors.New("read of an empty error slot")

	// ErrIllegalReassignment indicates a write to a slot that already holds
	// a fault. A slot accepts a single write; reuse requires an explicit
	// Reset.
	ErrIllegalReassignment = errors.New("error slot already holds a fault")

	// ErrKindConstraint indicates a fault whose kind is outside the slot's
	// declared kind set. The operation produced a kind the caller did not
	// anticipate, or the caller constrained the slot incorrectly.
	ErrKindConstraint = errors.New("fault kind outside the slot's declared set")

	// ErrNilFault indicates a nil fault was reported or raised.
	// Failures must be delivered as concrete fault values.
	ErrNilFault = errors.New("nil fault delivered")
)

// Misuse describes a violation of the fallible call protocol. It is always
// delivered by panic at the point of misuse, is never stored in a Slot, and
// is never converted by Catch: misuse is a bug in the calling code and must
// stay loud regardless of which error channel the call selected.
type Misuse struct {
	// Violation is one of the sentinel violations above.
	Violation error

	// Detail describes what was attempted.
	Detail string
}

// Error implements the error interface.
func (m *Misuse) Error() string {
	if m.Detail != "" {
		return fmt.Sprintf("protocol misuse: %v: %s", m.Violation, m.Detail)
	}
	return fmt.Sprintf("protocol misuse: %v", m.Violation)
}

// Unwrap returns the sentinel violation for errors.Is compatibility.
func (m *Misuse) Unwrap() error {
	return m.Violation
}

// misusef panics with a Misuse carrying the given violation.
func misusef(violation error, format string, args ...interface{}) {
	panic(&Misuse{
		Violation: violation,
		Detail:    fmt.Sprintf(format, args...),
	})
}
