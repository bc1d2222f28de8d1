// Package fallible implements a call-site-selectable error channel: the
// caller of a fallible operation chooses, per call, whether a failure raises
// a non-local exit or is captured into a caller-supplied Slot for local
// inspection.
//
// # The Protocol
//
// A fallible operation takes a trailing *Slot parameter. The caller's choice
// is expressed entirely by that argument:
//
//   - nil slot: failures are raised. Control leaves the call site and
//     unwinds to the nearest Catch boundary. The caller writes no error
//     handling and does not see a sentinel result.
//   - supplied slot: failures are captured into the slot, the operation
//     returns its documented no-result sentinel (typically the zero value),
//     and control continues on the next statement.
//
// The decision is made once per call, on slot presence alone. The same
// failure takes exactly one channel; there is no configuration, no global
// mode, and the operation's own code does not branch on the caller's choice
// beyond calling Report.
//
// # Writing A Fallible Operation
//
// Operations arm the slot on entry, do their work, and report failures:
//
//	func CreateUniqueFile(fsys billy.Filesystem, path string, data []byte, dst *fallible.Slot) string {
//	    fallible.Arm(dst)
//	    if occupied(fsys, path) {
//	        fallible.Report(dst, fault.WithDetail(
//	            fault.New(KindDirectoryAlreadyExists, "path occupied"), "path", path))
//	        return ""
//	    }
//	    // ... create the file ...
//	    return path
//	}
//
// Report either raises (nil dst) or captures and returns (supplied dst); in
// the capture case the operation returns its sentinel immediately after.
// Existing (T, error) functions can be bridged with Call and Do instead of
// being rewritten.
//
// # Calling In Capture Mode
//
// Callers that can handle a failure locally supply a slot and inspect it:
//
//	slot := fallible.NewSlot(fileops.KindDirectoryAlreadyExists)
//	path := fileops.CreateUniqueFile(fsys, "data/report.txt", payload, slot)
//	if !slot.IsEmpty() {
//	    // handle the collision; path is the "" sentinel
//	}
//
// Constraining the slot to specific kinds documents which conditions the
// call site claims to handle; a fault of any other kind is loud misuse, not
// a silent capture.
//
// # Calling In Raise Mode
//
// Callers with no local answer pass nil and let the failure unwind. A host
// boundary converts raises into ordinary errors:
//
//	func handle(req Request) (err error) {
//	    defer fallible.Catch(&err)
//	    path := fileops.CreateUniqueFile(fsys, req.Path, req.Data, nil)
//	    // runs only when the create succeeded
//	    return publish(path)
//	}
//
// # Slot Lifecycle
//
// A slot is empty, then holds at most one fault, then is explicitly Reset if
// it is to be reused. The transitions are enforced:
//
//   - Read on an empty slot: Misuse(ErrEmptySlotRead)
//   - second write without Reset, or a non-empty slot at call entry:
//     Misuse(ErrIllegalReassignment)
//   - captured kind outside the declared set: Misuse(ErrKindConstraint)
//
// IsEmpty is idempotent; Err returns nil-on-empty for callers that prefer
// the conventional shape. A slot is owned by one call at a time and must not
// be shared by concurrent calls.
//
// # Misuse Is Never Absorbed
//
// Misuse faults describe bugs in the calling code, not conditions of the
// domain. They are delivered by panic at the point of misuse, are never
// written into a slot, and pass through Catch untouched. Neither channel can
// be used to suppress them.
package fallible
