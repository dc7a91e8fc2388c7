package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/estate-api/internal/server"
)

type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware starts a transaction per request, or does nothing when
// the agent is off.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing tags the transaction with the client, the request ID and
// the outcome. Rejected payloads (400) and throttled inquiries (429) are
// flagged so they can be charted apart from server errors.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			txn.AddAttribute("http.real_ip", c.RealIP())
			txn.AddAttribute("http.user_agent", c.Request().UserAgent())
			txn.AddAttribute("http.route", c.Path())

			if requestID := GetRequestID(c); requestID != "" {
				txn.AddAttribute("request.id", requestID)
			}

			err := next(c)
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}

			if userID := GetUserID(c); userID != "" {
				txn.AddAttribute("user.id", userID)
			}

			status := responseStatus(c, err)
			txn.AddAttribute("http.status_code", status)
			switch status {
			case http.StatusBadRequest:
				txn.AddAttribute("intake.rejected", true)
			case http.StatusTooManyRequests:
				txn.AddAttribute("intake.throttled", true)
			}

			return err
		}
	}
}

// responseStatus is the status the client receives. Errors are written
// later by the global error handler, so their status comes from err.
func responseStatus(c echo.Context, err error) int {
	if err != nil && !c.Response().Committed {
		return toHTTPError(err).Status
	}
	return c.Response().Status
}
