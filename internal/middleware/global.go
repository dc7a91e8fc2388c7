package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/estate-api/internal/errs"
	"github.com/deppfellow/estate-api/internal/server"
)

type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger writes one access log line per request. The level follows
// the final status: error for 5xx, warn for 4xx.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			if v.Error != nil {
				var httpErr *errs.HTTPError
				var echoErr *echo.HTTPError

				if errors.As(v.Error, &httpErr) {
					statusCode = httpErr.Status
				} else if errors.As(v.Error, &echoErr) {
					statusCode = echoErr.Code
				}
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}
			if userID := GetUserID(c); userID != "" {
				e = e.Str("user_id", userID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// BodyLimit caps request bodies for the intake routes.
func (global *GlobalMiddlewares) BodyLimit() echo.MiddlewareFunc {
	return middleware.BodyLimit("1M")
}

// GlobalErrorHandler is the Echo HTTPErrorHandler. Every error body has the
// errs.Response shape; anything that is neither an *errs.HTTPError nor an
// *echo.HTTPError becomes a 500 whose details stay in the log.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	httpErr := toHTTPError(err)

	logger := GetLogger(c)
	event := logger.Warn()
	if httpErr.Status >= http.StatusInternalServerError {
		event = logger.Error().Stack()
	}
	event.
		Err(err).
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code).
		Msg(httpErr.Error())

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}

	_ = c.JSON(httpErr.Status, httpErr.Response())
}

func toHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code == http.StatusNotFound {
			return errs.NewNotFoundError("Route not found", false, nil)
		}

		message, ok := echoErr.Message.(string)
		if !ok {
			message = http.StatusText(echoErr.Code)
		}

		return &errs.HTTPError{
			Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
			Message: message,
			Status:  echoErr.Code,
		}
	}

	return errs.NewInternalServerError()
}
