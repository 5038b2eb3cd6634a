package formdata

import "fmt"

// EncodingError reports a field name, filename, or boundary that cannot
// be framed safely in a multipart header.
type EncodingError struct {
	// Field is the offending field name (may be empty for boundary errors).
	Field string
	// Reason describes why the value was rejected.
	Reason string
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("formdata: field %q: %s", e.Field, e.Reason)
	}
	return "formdata: " + e.Reason
}

// newEncodingError creates an encoding error for a field.
func newEncodingError(field, reason string) *EncodingError {
	return &EncodingError{Field: field, Reason: reason}
}
