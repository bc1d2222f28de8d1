package fallible

import "github.com/jmgilman/fallible/fault"

// Arm validates the caller's slot at the entry of a fallible call.
// Operations call it first, before doing any work.
//
// A nil slot is valid and selects the raise channel. A supplied slot must be
// empty: arriving at a call with a held fault is protocol misuse
// (ErrIllegalReassignment), surfaced here rather than at the eventual write
// so the fault points at the offending call. Arming an empty or nil slot
// also guarantees the slot is still empty when the call succeeds.
func Arm(dst *Slot) {
	if dst == nil {
		return
	}
	if dst.value != nil {
		misusef(ErrIllegalReassignment, "slot holds %q at call entry; Reset before reuse", dst.value.Kind())
	}
}

// Report delivers a failure on the channel the caller selected. The decision
// is made here, once per call, on slot presence alone: a nil dst raises v,
// a supplied dst captures v so the operation can return its documented
// no-result sentinel.
//
//	func CreateUniqueFile(fsys billy.Filesystem, path string, data []byte, dst *fallible.Slot) string {
//	    fallible.Arm(dst)
//	    if occupied(fsys, path) {
//	        fallible.Report(dst, fault.New(KindDirectoryAlreadyExists, "path occupied"))
//	        return ""
//	    }
//	    // ...
//	}
//
// Capture enforces the slot contract: a second Report in the same call is
// misuse (ErrIllegalReassignment), as is a fault outside the slot's declared
// kind set (ErrKindConstraint). A nil fault is misuse on either channel
// (ErrNilFault).
func Report(dst *Slot, v fault.Value) {
	if dst == nil {
		Raise(v)
	}
	dst.write(v)
}
