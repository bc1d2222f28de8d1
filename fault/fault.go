package fault

// Value extends the standard error interface with structured failure
// information.
//
// Value provides a flat kind discriminant for categorization, a kind-specific
// detail payload, and compatibility with standard library error handling
// (errors.Is, errors.As, errors.Unwrap). Values are immutable once created;
// all attachment functions return new values.
type Value interface {
	error

	// Kind returns the kind identifying the failure condition.
	Kind() Kind

	// Message returns the human-readable failure message.
	Message() string

	// Detail returns the kind-specific payload as a read-only map.
	// Returns nil if no detail has been attached.
	Detail() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As
	// compatibility. Returns nil if this value does not wrap another error.
	Unwrap() error
}
