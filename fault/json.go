package fault

import (
	"encoding/json"
)

// Response represents the JSON structure for fault values at serialization
// boundaries. It provides a flat representation without exposing internal
// error chains.
//
// The wrapped cause chain is intentionally excluded to prevent information
// leakage while still providing the kind, message, and detail payload.
type Response struct {
	// Kind is the kind identifying the failure condition.
	Kind string `json:"kind"`

	// Message is the human-readable failure message.
	Message string `json:"message"`

	// Detail contains the kind-specific payload.
	// Omitted from JSON if empty.
	Detail map[string]interface{} `json:"detail,omitempty"`
}

// ToJSON converts any error to a Response suitable for JSON serialization.
// Returns nil if err is nil.
//
// For Value instances, extracts the kind, message, and detail payload.
// For standard errors, uses KindUnknown and the error message.
//
// The cause chain is intentionally excluded: chains may contain internal
// implementation details, file paths, or other sensitive information.
func ToJSON(err error) *Response {
	if err == nil {
		return nil
	}

	kind := KindOf(err)

	message := err.Error()
	var detail map[string]interface{}

	var v Value
	if As(err, &v) {
		message = v.Message()
		detail = v.Detail()
	}

	return &Response{
		Kind:    string(kind),
		Message: message,
		Detail:  detail,
	}
}

// MarshalJSON implements json.Marshaler for the concrete fault value.
// This allows Value instances to be marshaled directly using json.Marshal
// without needing to call ToJSON explicitly.
//
// Example:
//
//	err := fault.New(KindNotFound, "user not found")
//	jsonBytes, _ := json.Marshal(err)
//	// Output: {"kind":"NOT_FOUND","message":"user not found"}
func (v *value) MarshalJSON() ([]byte, error) {
	response := &Response{
		Kind:    string(v.kind),
		Message: v.message,
		Detail:  v.detail,
	}
	data, err := json.Marshal(response)
	if err != nil {
		// Should rarely happen; detail values are caller-supplied and may
		// contain unmarshalable types.
		return nil, Wrap(err, KindUnknown, "failed to marshal fault response")
	}
	return data, nil
}
