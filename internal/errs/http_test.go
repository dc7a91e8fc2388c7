package errs_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/estate-api/internal/errs"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", errs.MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "TOO_MANY_REQUESTS", errs.MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)))
}

func TestValidationErrorBody(t *testing.T) {
	err := errs.NewValidationError([]errs.FieldError{
		{Field: "password", Message: "Password is required"},
	})

	body, marshalErr := json.Marshal(err.Response())
	require.NoError(t, marshalErr)

	assert.JSONEq(t,
		`{"success":false,"errors":[{"field":"password","message":"Password is required"}]}`,
		string(body))
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "validation failed", err.Error())
}

func TestHTTPErrorBody(t *testing.T) {
	err := errs.NewNotFoundError("Route not found", false, nil)

	body, marshalErr := json.Marshal(err.Response())
	require.NoError(t, marshalErr)

	assert.JSONEq(t, `{"success":false,"code":"NOT_FOUND","message":"Route not found"}`, string(body))
	assert.Equal(t, "Route not found", err.Error())
}

func TestBadRequestCustomCode(t *testing.T) {
	code := "RULE_SET_UNKNOWN"
	err := errs.NewBadRequestError("unknown rule set", false, &code, nil, nil)
	assert.Equal(t, code, err.Code)

	err = errs.NewBadRequestError("bad", false, nil, nil, nil)
	assert.Equal(t, "BAD_REQUEST", err.Code)
}

func TestHTTPErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", errs.NewUnauthorizedError("Unauthorized", false))

	assert.True(t, errors.Is(wrapped, &errs.HTTPError{}))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
}

func TestWithMessageCopies(t *testing.T) {
	base := errs.NewTooManyRequestsError("slow down")
	changed := base.WithMessage("try again later")

	assert.Equal(t, "slow down", base.Message)
	assert.Equal(t, "try again later", changed.Message)
	assert.Equal(t, base.Status, changed.Status)
	assert.Equal(t, base.Code, changed.Code)
}
