package questionnaire

import (
	"errors"
	"fmt"
)

var (
	// ErrSchema matches any *SchemaError via errors.Is.
	ErrSchema = errors.New("schema error")
	// ErrInput matches any *InputError via errors.Is.
	ErrInput = errors.New("input error")
)

// SchemaError reports a malformed question schema.
type SchemaError struct {
	Key    string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("schema error: %s: %s", e.Reason, e.Key)
	}
	return "schema error: " + e.Reason
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// InputError reports an unreadable or undecodable input document.
type InputError struct {
	Source string
	Err    error
}

func (e *InputError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("input error: %v", e.Err)
	}
	return fmt.Sprintf("input error: %s: %v", e.Source, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

func (e *InputError) Is(target error) bool { return target == ErrInput }
