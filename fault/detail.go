package fault

import "errors"

// WithDetail adds a single detail field to an error.
// Returns a new Value with the field added. Existing detail fields are
// preserved; a field with the same key is overridden.
//
// If err is not a Value, it is converted to one with KindUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := fault.New(KindDirectoryAlreadyExists, "path occupied")
//	err = fault.WithDetail(err, "path", "/etc/app/config")
func WithDetail(err error, key string, val interface{}) Value {
	if err == nil {
		return nil
	}

	return WithDetailMap(err, map[string]interface{}{key: val})
}

// WithDetailMap adds multiple detail fields to an error.
// Returns a new Value with the fields merged. Existing fields are preserved;
// new fields override existing ones with the same key.
//
// If err is not a Value, it is converted to one with KindUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := fault.New(KindValidationFailure, "payload rejected")
//	err = fault.WithDetailMap(err, map[string]interface{}{
//	    "problems": problems,
//	    "limit":    maxPayload,
//	})
func WithDetailMap(err error, detail map[string]interface{}) Value {
	if err == nil {
		return nil
	}

	var v Value
	if !errors.As(err, &v) {
		v = &value{
			kind:    KindUnknown,
			message: err.Error(),
			detail:  nil,
			cause:   err,
		}
	}

	// Merge existing detail with new detail, new fields override
	newDetail := make(map[string]interface{})
	for k, val := range v.Detail() {
		newDetail[k] = val
	}
	for k, val := range detail {
		newDetail[k] = val
	}

	return &value{
		kind:    v.Kind(),
		message: v.Message(),
		detail:  newDetail,
		cause:   v.Unwrap(),
	}
}
