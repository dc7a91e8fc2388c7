package validation

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/estate-api/internal/errs"
)

// Respond writes the 400 validation response for a failed outcome and
// reports true, meaning the caller must stop. A valid outcome writes nothing
// and reports false.
//
// Body:
//
//	{ "success": false, "errors": [ { "field": "...", "message": "..." } ] }
func Respond(c echo.Context, outcome Outcome) (bool, error) {
	if outcome.Valid() {
		return false, nil
	}

	return true, c.JSON(http.StatusBadRequest, errs.NewValidationError(outcome.Errors).Response())
}
