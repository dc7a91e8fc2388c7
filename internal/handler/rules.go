package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/estate-api/internal/errs"
	"github.com/deppfellow/estate-api/internal/middleware"
	"github.com/deppfellow/estate-api/internal/server"
	"github.com/deppfellow/estate-api/internal/validation"
)

// RulesHandler exposes the rule tables so clients can mirror them, and lets
// them check a payload without submitting it.
type RulesHandler struct {
	Handler
}

func NewRulesHandler(s *server.Server) *RulesHandler {
	return &RulesHandler{
		Handler: NewHandler(s),
	}
}

func (h *RulesHandler) ListRuleSets(c echo.Context) error {
	sets := validation.RuleSets()

	descriptions := make([]validation.Description, 0, len(sets))
	for _, rs := range sets {
		descriptions = append(descriptions, rs.Describe())
	}

	return c.JSON(http.StatusOK, Envelope{Success: true, Data: descriptions})
}

func (h *RulesHandler) GetRuleSet(c echo.Context) error {
	rs, err := lookupRuleSet(c.Param("name"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Envelope{Success: true, Data: rs.Describe()})
}

// Validate evaluates the body against the named rule set and reports the
// outcome without queuing anything.
func (h *RulesHandler) Validate(c echo.Context) error {
	rs, err := lookupRuleSet(c.Param("name"))
	if err != nil {
		return err
	}

	outcome := validation.Evaluate(rs, validation.ExtractRecord(c))

	middleware.GetLogger(c).Debug().
		Str("rule_set", rs.Name()).
		Bool("valid", outcome.Valid()).
		Int("field_errors", len(outcome.Errors)).
		Msg("dry-run validation")

	if stop, err := validation.Respond(c, outcome); stop {
		return err
	}

	return c.JSON(http.StatusOK, Envelope{Success: true})
}

func lookupRuleSet(name string) (validation.RuleSet, error) {
	rs, ok := validation.Lookup(name)
	if !ok {
		code := "RULE_SET_NOT_FOUND"
		return validation.RuleSet{}, errs.NewNotFoundError("Rule set not found", true, &code)
	}
	return rs, nil
}
