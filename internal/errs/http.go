// Package errs defines the error shape returned by the data-access layer.
//
// Every failure that leaves a repository is an *HTTPError. Callers (usually an
// HTTP route handler) can render it directly, and can still reach the original
// driver error through errors.Is / errors.As because the cause is kept.
//
// "Nothing found" is never an error: lookups return a nil record instead.
package errs

import (
	"strings"
)

// FieldError represents a field-level error.
//
// Example:
//
//	{ "field": "email", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ActionType is a string-based enum describing what the client should do.
type ActionType string

const (
	// ActionTypeRedirect tells the client it should redirect somewhere.
	// Value holds the URL or route.
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional "what the client should do next" instruction.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error type surfaced to callers of the data-access layer.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "USER_ALREADY_EXISTS").
//   - Message: human-friendly message.
//   - Status: HTTP status the caller should answer with.
//   - Override: whether the message is safe to show to end users as-is.
//   - Errors: list of per-field errors.
//   - Action: client instruction (optional).
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors"`
	Action *Action      `json:"action"`

	// cause is the underlying error, never serialized.
	cause error
}

// Error returns the message so logs show the client-facing text.
func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying driver error.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *HTTPError with the same Code and Status,
// so errors.Is(err, ErrUserAlreadyExists) matches regardless of message or
// cause.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	return ok && t.Code == e.Code && t.Status == e.Status
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	cp := *e
	cp.Message = message
	return &cp
}

// WithCause returns a copy of this HTTPError that wraps cause.
func (e *HTTPError) WithCause(cause error) *HTTPError {
	cp := *e
	cp.cause = cause
	return &cp
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
