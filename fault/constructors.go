package fault

import "fmt"

// New creates a new Value with the given kind and message.
//
// Example:
//
//	err := fault.New(KindNotFound, "project not found")
func New(kind Kind, message string) Value {
	return &value{
		kind:    kind,
		message: message,
		detail:  nil,
		cause:   nil,
	}
}

// Newf creates a new Value with a formatted message.
//
// Example:
//
//	err := fault.Newf(KindValidationFailure, "name too long: %d characters (max %d)", len(name), maxLen)
func Newf(kind Kind, format string, args ...interface{}) Value {
	return &value{
		kind:    kind,
		message: fmt.Sprintf(format, args...),
		detail:  nil,
		cause:   nil,
	}
}
