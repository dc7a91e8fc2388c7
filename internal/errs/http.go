package errs

import "strings"

// FieldError is a single field-level failure.
// Example:
//
//	{ "field": "email", "message": "Please provide a valid email" }
type FieldError struct {
	// Field is the request field the failure relates to (e.g. "email").
	Field string `json:"field"`

	// Message is the human-readable text shown to the end user.
	Message string `json:"message"`
}

// ActionType is a string-based enum describing what the client should do.
type ActionType string

const (
	// ActionTypeRedirect tells the client it should redirect somewhere.
	// Usually "Value" holds the URL or route.
	ActionTypeRedirect ActionType = "redirect"
)

// Action describes an optional "what the client should do next" instruction,
// e.g. redirect to the sign-in page after a 401 on an admin route.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error type handlers and middleware return.
//
// The global error handler turns it into a Response with Status as the HTTP
// status code. Override tells the handler whether Message is safe to show to
// the end user as is.
type HTTPError struct {
	Code     string
	Message  string
	Status   int
	Override bool

	// Errors holds field-level validation failures in rule declaration order.
	Errors []FieldError

	// Action is an optional client instruction (redirect, etc.).
	Action *Action
}

// Response is the JSON body written for every failed request.
type Response struct {
	Success bool         `json:"success"`
	Code    string       `json:"code,omitempty"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Action  *Action      `json:"action,omitempty"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	if e.Message == "" && len(e.Errors) > 0 {
		return "validation failed"
	}
	return e.Message
}

// Is reports whether target is also an *HTTPError. It does not compare
// Code or Status, only the type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
	}
}

// Response builds the client-facing body. Success is always false.
func (e *HTTPError) Response() Response {
	return Response{
		Success: false,
		Code:    e.Code,
		Message: e.Message,
		Errors:  e.Errors,
		Action:  e.Action,
	}
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
