// core/neo/errors.go
package neo

import "fmt"

// MissingFieldError reports a record without its primary-key field.
// Construction of that record is aborted; there is no usable default for an
// entity's identity.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Entity, e.Field)
}

// NumericFieldError reports a field that is present but not parseable as a
// number. Never coerced to a default.
type NumericFieldError struct {
	Entity string
	Field  string
	Value  string
	Err    error
}

func (e *NumericFieldError) Error() string {
	return fmt.Sprintf("%s: field %q: invalid numeric value %q: %v", e.Entity, e.Field, e.Value, e.Err)
}

func (e *NumericFieldError) Unwrap() error { return e.Err }
