package validation

import (
	"regexp"

	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that are checked
// against a rule set before the handler sees them.
//
// Populate receives the sanitized record (trimmed where the rules say so)
// only after every rule passed. Implementations use pointer receivers.
type Validatable interface {
	Rules() RuleSet
	Populate(record Record)
}

// BindAndValidate extracts the request's fields, evaluates them against the
// payload's rule set and, when they pass, populates the payload.
//
// The returned outcome is handed to Respond by the caller.
func BindAndValidate(c echo.Context, payload Validatable) Outcome {
	record := ExtractRecord(c)
	rules := payload.Rules()

	outcome := Evaluate(rules, record)
	if outcome.Valid() {
		payload.Populate(rules.Sanitize(record))
	}
	return outcome
}

// uuidRegex matches standard UUID format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsValidUUID checks whether a string matches UUID format. It does not check
// version or variant bits.
func IsValidUUID(uuid string) bool {
	return uuidRegex.MatchString(uuid)
}
