package fault

import "fmt"

// Wrap wraps an error under a new kind while preserving the original error.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is
// and errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	data, err := util.ReadFile(fsys, path)
//	if err != nil {
//	    return fault.Wrap(err, KindNotFound, "failed to read data file")
//	}
func Wrap(err error, kind Kind, message string) Value {
	if err == nil {
		return nil
	}

	return &value{
		kind:    kind,
		message: message,
		detail:  nil,
		cause:   err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the
// original error.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := validate(input); err != nil {
//	    return fault.Wrapf(err, KindValidationFailure, "validation failed for field %s", fieldName)
//	}
func Wrapf(err error, kind Kind, format string, args ...interface{}) Value {
	if err == nil {
		return nil
	}

	return Wrap(err, kind, fmt.Sprintf(format, args...))
}

// WrapWithDetail wraps an error and attaches a detail payload in a single
// operation. The detail map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := decode(raw); err != nil {
//	    return fault.WrapWithDetail(err, KindValidationFailure, "payload rejected", map[string]interface{}{
//	        "offset": offset,
//	        "field":  fieldName,
//	    })
//	}
func WrapWithDetail(err error, kind Kind, message string, detail map[string]interface{}) Value {
	if err == nil {
		return nil
	}

	var detailCopy map[string]interface{}
	if detail != nil {
		detailCopy = make(map[string]interface{}, len(detail))
		for k, v := range detail {
			detailCopy[k] = v
		}
	}

	return &value{
		kind:    kind,
		message: message,
		detail:  detailCopy,
		cause:   err,
	}
}

// From adopts any error as a Value.
//
// If err is already a Value it is returned unchanged. Otherwise it is
// wrapped under KindUnknown with the original error preserved as the cause,
// so errors.Is and errors.As continue to see it.
//
// Returns nil if err is nil.
func From(err error) Value {
	if err == nil {
		return nil
	}

	if v, ok := err.(Value); ok {
		return v
	}

	return &value{
		kind:    KindUnknown,
		message: err.Error(),
		detail:  nil,
		cause:   err,
	}
}
