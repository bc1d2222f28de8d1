package fault

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var v fault.Value
//	if fault.As(err, &v) {
//	    kind := v.Kind()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// KindOf extracts the Kind from an error.
// Returns KindUnknown if the error is nil or its chain contains no Value.
//
// This function handles the error chain and extracts the kind from the
// outermost Value in the chain.
//
// Example:
//
//	if fault.KindOf(err) == fileops.KindNotFound {
//	    // Handle missing file
//	}
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var v Value
	if stderrors.As(err, &v) {
		return v.Kind()
	}

	return KindUnknown
}

// IsKind reports whether the outermost Value in err's chain has the given
// kind. Returns false for nil errors.
//
// Kinds are matched exactly: the kind space is flat, so there is no notion
// of one kind subsuming another.
func IsKind(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}
