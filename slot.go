package fallible

import "github.com/jmgilman/fallible/fault"

// Slot is caller-owned storage for at most one fault produced by a fallible
// call. Supplying a slot to an operation selects the capture channel:
// failures are written into the slot for local inspection instead of being
// raised.
//
// A slot holds zero or one fault. It accepts a single write per call;
// reusing a slot for a later call requires an explicit Reset. A slot must
// not be shared by concurrent calls.
type Slot struct {
	kinds []fault.Kind
	value fault.Value
}

// NewSlot creates an empty slot.
//
// When kinds are given, the slot is constrained to that set: an operation
// writing a fault of any other kind is protocol misuse (ErrKindConstraint).
// With no kinds, the slot accepts any fault. The constraint documents, at
// the call site, exactly which conditions the caller claims to handle.
func NewSlot(kinds ...fault.Kind) *Slot {
	s := &Slot{}
	if len(kinds) > 0 {
		s.kinds = make([]fault.Kind, len(kinds))
		copy(s.kinds, kinds)
	}
	return s
}

// IsEmpty reports whether the slot holds no fault. It is idempotent and has
// no side effects, so callers may branch on it repeatedly.
func (s *Slot) IsEmpty() bool {
	return s.value == nil
}

// Read returns the held fault.
//
// Reading an empty slot is protocol misuse and panics with a Misuse carrying
// ErrEmptySlotRead. Check IsEmpty first, or use Err when nil-on-empty is the
// more convenient shape.
func (s *Slot) Read() fault.Value {
	if s.value == nil {
		misusef(ErrEmptySlotRead, "check IsEmpty before Read, or use Err")
	}
	return s.value
}

// Err returns the held fault as an ordinary error, or nil when the slot is
// empty. It is the soft twin of Read for callers that want to branch with
// the familiar err != nil shape.
func (s *Slot) Err() error {
	if s.value == nil {
		return nil
	}
	return s.value
}

// Reset empties the slot, permitting reuse in a later call. Resetting an
// already-empty slot is a no-op.
func (s *Slot) Reset() {
	s.value = nil
}

// Kinds returns a copy of the slot's declared kind set. Returns nil when the
// slot is unconstrained.
func (s *Slot) Kinds() []fault.Kind {
	if s.kinds == nil {
		return nil
	}
	kinds := make([]fault.Kind, len(s.kinds))
	copy(kinds, s.kinds)
	return kinds
}

// write stores v in the slot. It enforces the slot contract: a single write
// (ErrIllegalReassignment), a concrete fault (ErrNilFault), and a kind
// inside the declared set (ErrKindConstraint).
func (s *Slot) write(v fault.Value) {
	if v == nil {
		misusef(ErrNilFault, "operations must deliver a concrete fault")
	}
	if s.value != nil {
		misusef(ErrIllegalReassignment, "slot already holds %q; Reset before reuse", s.value.Kind())
	}
	if !s.admits(v.Kind()) {
		misusef(ErrKindConstraint, "kind %q not in declared set %v", v.Kind(), s.kinds)
	}
	s.value = v
}

// admits reports whether the slot's declared kind set allows k.
func (s *Slot) admits(k fault.Kind) bool {
	if len(s.kinds) == 0 {
		return true
	}
	for _, allowed := range s.kinds {
		if k == allowed {
			return true
		}
	}
	return false
}
