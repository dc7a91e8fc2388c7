package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/deppfellow/estate-api/internal/errs"
	"github.com/deppfellow/estate-api/internal/server"
)

type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Inquiries throttles the public inquiry form per client IP using the
// intake rate and burst from the config.
func (r *RateLimitMiddleware) Inquiries() echo.MiddlewareFunc {
	intake := r.server.Config.Intake

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(intake.InquiryRateLimit),
		Burst:     intake.InquiryBurst,
		ExpiresIn: 3 * time.Minute,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewTooManyRequestsError("Too many requests, please try again later")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())

			GetLogger(c).Warn().
				Str("identifier", identifier).
				Str("path", c.Path()).
				Msg("rate limit exceeded")

			return errs.NewTooManyRequestsError("Too many requests, please try again later")
		},
	})
}

// RecordRateLimitHit reports a rejected request to New Relic when enabled.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
