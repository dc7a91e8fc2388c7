package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/deppfellow/estate-api/internal/logger"
	"github.com/deppfellow/estate-api/internal/server"
)

const (
	UserIDKey   = "user_id"
	UserRoleKey = "user_role"
	LoggerKey   = "logger"
)

// ContextEnhancer attaches a request-scoped logger carrying the request ID,
// route, client IP and, when present, trace and user fields.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			if userID := GetUserID(c); userID != "" {
				contextLogger = contextLogger.With().Str("user_id", userID).Logger()
			}

			if userRole, ok := c.Get(UserRoleKey).(string); ok && userRole != "" {
				contextLogger = contextLogger.With().Str("user_role", userRole).Logger()
			}

			c.Set(LoggerKey, &contextLogger)

			// zerolog.Ctx(ctx) returns it to code below the handlers.
			c.SetRequest(c.Request().WithContext(contextLogger.WithContext(c.Request().Context())))

			return next(c)
		}
	}
}

func GetUserID(c echo.Context) string {
	if userID, ok := c.Get(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

// GetLogger returns the request logger, or a no-op logger when
// EnhanceContext did not run.
func GetLogger(c echo.Context) *zerolog.Logger {
	if l, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return l
	}

	l := zerolog.Nop()
	return &l
}
