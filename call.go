package fallible

import "github.com/jmgilman/fallible/fault"

// Call runs a conventional (T, error) function as a fallible call, bridging
// existing Go code onto the protocol without rewriting it.
//
// On success the result is returned unchanged. On failure the error is
// adopted via fault.From and delivered on the channel dst selects; in
// capture mode the zero value of T serves as the no-result sentinel.
//
//	data := fallible.Call(dst, func() ([]byte, error) {
//	    return util.ReadFile(fsys, path)
//	})
func Call[T any](dst *Slot, fn func() (T, error)) T {
	Arm(dst)

	result, err := fn()
	if err != nil {
		var zero T
		Report(dst, fault.From(err))
		return zero
	}
	return result
}

// Do runs a result-less function as a fallible call. It is Call for
// functions with no value to return.
//
//	fallible.Do(dst, func() error {
//	    return fsys.Remove(path)
//	})
func Do(dst *Slot, fn func() error) {
	Arm(dst)

	if err := fn(); err != nil {
		Report(dst, fault.From(err))
	}
}
