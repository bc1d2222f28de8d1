package fallible

import "github.com/jmgilman/fallible/fault"

// Raised wraps a fault traveling on the raise channel, so that host
// boundaries can recognize protocol raises in their own recover sites and
// distinguish them from ordinary panics.
type Raised struct {
	// Value is the fault being raised.
	Value fault.Value
}

// Error implements the error interface.
func (r Raised) Error() string {
	return r.Value.Error()
}

// Unwrap returns the raised fault so errors.Is and errors.As see through
// the wrapper.
func (r Raised) Unwrap() error {
	return r.Value
}

// Raise delivers v on the raise channel: it panics with a Raised wrapper
// that Catch recognizes. Operations normally do not call Raise directly;
// they call Report, which raises only when the caller supplied no slot.
//
// Raising a nil fault is protocol misuse (ErrNilFault).
func Raise(v fault.Value) {
	if v == nil {
		misusef(ErrNilFault, "raise requires a concrete fault")
	}
	panic(Raised{Value: v})
}

// Catch stops a protocol raise and converts it into an ordinary error. It
// must be deferred at a host boundary, bound to a named error return:
//
//	func boundary() (err error) {
//	    defer fallible.Catch(&err)
//	    result := operation(input, nil) // no slot: failures raise
//	    use(result)
//	    return nil
//	}
//
// Panics that are not protocol raises are not stopped. In particular, Misuse
// panics pass through: a contract violation in the calling code is a bug,
// and no error channel may absorb it.
func Catch(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if raised, ok := r.(Raised); ok {
		*errp = raised.Value
		return
	}
	panic(r)
}
