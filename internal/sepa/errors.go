package sepa

import "fmt"

// MissingMandatoryFieldError reports a field that must be present before a
// document can be serialized.
type MissingMandatoryFieldError struct {
	// Field is the name of the missing field, e.g. "creditor" or "message_id".
	Field string
}

// Error implements the error interface.
func (e *MissingMandatoryFieldError) Error() string {
	return fmt.Sprintf("mandatory field '%s' is not set", e.Field)
}

// InvalidIdentityError reports a creditor identity that failed validation
// when it was assigned to a document.
type InvalidIdentityError struct {
	// Name is the display name of the rejected identity, if any.
	Name string

	// Reason describes which check failed.
	Reason string
}

// Error implements the error interface.
func (e *InvalidIdentityError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid identity: %s", e.Reason)
	}
	return fmt.Sprintf("invalid identity '%s': %s", e.Name, e.Reason)
}

// InvalidSchemaError reports an unsupported schema identifier.
type InvalidSchemaError struct {
	Schema string
}

// Error implements the error interface.
func (e *InvalidSchemaError) Error() string {
	return fmt.Sprintf("unsupported schema '%s'", e.Schema)
}
