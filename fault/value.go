package fault

import "fmt"

// value is the concrete implementation of Value.
// It is private to enforce construction through package functions.
type value struct {
	kind    Kind
	message string
	detail  map[string]interface{}
	cause   error
}

// Error returns the string representation of the fault.
// Format: "[KIND] message" or "[KIND] message: cause" if cause is present.
func (v *value) Error() string {
	if v.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", v.kind, v.message, v.cause)
	}
	return fmt.Sprintf("[%s] %s", v.kind, v.message)
}

// Kind returns the kind identifying the failure condition.
func (v *value) Kind() Kind {
	return v.kind
}

// Message returns the failure message.
func (v *value) Message() string {
	return v.message
}

// Detail returns a defensive copy of the detail map.
// Returns nil if no detail has been attached (maintains immutability).
func (v *value) Detail() map[string]interface{} {
	if v.detail == nil {
		return nil
	}
	detail := make(map[string]interface{}, len(v.detail))
	for k, val := range v.detail {
		detail[k] = val
	}
	return detail
}

// Unwrap returns the wrapped error for standard library compatibility.
func (v *value) Unwrap() error {
	return v.cause
}
