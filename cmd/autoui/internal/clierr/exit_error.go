package clierr

import (
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/bartekus/autoui/internal/questionnaire"
)

// Exit codes. Workflows branch on these, so they are part of the CLI contract.
const (
	ExitFailure      = 1
	ExitUsage        = 2
	ExitSchema       = 3
	ExitInput        = 4
	ExitIssueTracker = 5
)

type ExitCoder interface {
	error
	ExitCode() int
}

// ExitError is an error that carries an explicit process exit code.
// It supports wrapping via Unwrap so errors.Is/As work as expected.
type ExitError struct {
	code  int
	msg   string
	cause error
}

func (e *ExitError) Error() string {
	// Keep this stable and user-facing; don't include code here.
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *ExitError) ExitCode() int { return e.code }

// Unwrap enables errors.Is/As to traverse the underlying cause.
func (e *ExitError) Unwrap() error { return e.cause }

// New creates an ExitError with a message.
func New(code int, msg string) error {
	return &ExitError{code: normalize(code), msg: msg}
}

// Wrap creates an ExitError that wraps an underlying cause.
func Wrap(code int, msg string, cause error) error {
	if cause == nil {
		return New(code, msg)
	}
	return &ExitError{code: normalize(code), msg: msg, cause: cause}
}

// Newf is a formatted variant.
func Newf(code int, format string, args ...any) error {
	return &ExitError{code: normalize(code), msg: fmt.Sprintf(format, args...)}
}

// Classify wraps err with the exit code matching its kind. Errors that
// already carry a code are returned unchanged.
func Classify(msg string, err error) error {
	if err == nil {
		return nil
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return err
	}
	switch {
	case errors.Is(err, questionnaire.ErrSchema):
		return Wrap(ExitSchema, msg, err)
	case errors.Is(err, questionnaire.ErrInput):
		return Wrap(ExitInput, msg, err)
	default:
		return Wrap(ExitFailure, msg, err)
	}
}

// ExitCodeOf extracts an exit code from any error, defaulting to 1.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return ExitFailure
}

var (
	errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	kindLabel  = color.New(color.FgYellow).SprintFunc()
)

// Format renders err for the terminal, tagged with its kind.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s [%s]: %v", errorLabel("Error"), kindLabel(kind(ExitCodeOf(err))), err)
}

func kind(code int) string {
	switch code {
	case ExitUsage:
		return "usage"
	case ExitSchema:
		return "schema"
	case ExitInput:
		return "input"
	case ExitIssueTracker:
		return "issue tracker"
	default:
		return "failure"
	}
}

func normalize(code int) int {
	// Exit code 0 means success; errors should never be 0.
	if code <= 0 {
		return ExitFailure
	}
	return code
}
