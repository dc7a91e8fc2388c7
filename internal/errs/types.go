package errs

import (
	"net/http"
)

// NewUnauthorizedError creates a 401 Unauthorized HTTPError.
//
// override flags whether the message may be shown to the end user as is.
func NewUnauthorizedError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnauthorized)),
		Message:  message,
		Status:   http.StatusUnauthorized,
		Override: override,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code overrides the default "BAD_REQUEST" when non-nil. errors and action
// are optional.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewValidationError creates the 400 returned for failed field rules.
//
// Code and Message stay empty so the body is exactly
// {"success": false, "errors": [...]}.
func NewValidationError(errors []FieldError) *HTTPError {
	return &HTTPError{
		Status:   http.StatusBadRequest,
		Override: true,
		Errors:   errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message:  message,
		Status:   http.StatusTooManyRequests,
		Override: true,
	}
}

// NewInternalServerError creates a 500 with the generic status text as
// message. The real cause belongs in the logs, not in the response.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}
