package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/estate-api/internal/middleware"
	"github.com/deppfellow/estate-api/internal/server"
	"github.com/deppfellow/estate-api/internal/validation"
)

type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// Envelope is the body of every successful response.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// HandlerFunc handles a request whose payload already passed its rule set.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// payload is satisfied by a pointer to a request struct, which lets the
// pipeline allocate a fresh payload per request.
type payload[T any] interface {
	*T
	validation.Validatable
}

// Handle wraps handler with rule-set validation, logging and New Relic
// attributes. A failed validation answers 400 with the field errors and the
// handler is not called. The result is written as data of an Envelope.
func Handle[T any, Req payload[T], Res any](h Handler, handler HandlerFunc[Req, Res], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := Req(new(T))
		return handleRequest(c, req, func(c echo.Context, req Req) (any, error) {
			return handler(c, req)
		}, status)
	}
}

func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (any, error),
	status int,
) error {
	start := time.Now()
	route := c.Path()
	ruleSet := req.Rules().Name()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
		txn.AddAttribute("validation.rule_set", ruleSet)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("method", c.Request().Method).
		Str("route", route).
		Str("rule_set", ruleSet).
		Logger()

	logger.Info().Msg("handling request")

	validationStart := time.Now()
	outcome := validation.BindAndValidate(c, req)
	validationDuration := time.Since(validationStart)

	if txn != nil {
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	if stop, err := validation.Respond(c, outcome); stop {
		logger.Warn().
			Int("field_errors", len(outcome.Errors)).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.field_errors", len(outcome.Errors))
		}
		return err
	}

	if txn != nil {
		txn.AddAttribute("validation.status", "success")
	}

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Msg("request validation successful")

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		}
		return err
	}

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", time.Since(start).Milliseconds())
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return c.JSON(status, Envelope{Success: true, Data: result})
}
