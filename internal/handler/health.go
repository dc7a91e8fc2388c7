package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/estate-api/internal/middleware"
	"github.com/deppfellow/estate-api/internal/server"
)

type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

// CheckHealth pings the configured dependencies. It answers 503 when any of
// them fails.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]checkResult),
	}

	obs := h.server.Config.Observability
	if obs != nil && obs.HealthCheckEnabled("redis") && h.server.Redis != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), obs.HealthChecks.Timeout)
		defer cancel()

		redisStart := time.Now()
		err := h.server.Redis.Ping(ctx).Err()
		result := checkResult{Status: "healthy", ResponseTime: time.Since(redisStart).String()}

		if err != nil {
			result.Status = "unhealthy"
			result.Error = err.Error()
			response.Status = "unhealthy"

			logger.Error().
				Err(err).
				Dur("response_time", time.Since(redisStart)).
				Msg("redis health check failed")

			h.recordFailure("redis", map[string]interface{}{
				"response_time_ms": time.Since(redisStart).Milliseconds(),
				"error_message":    err.Error(),
			})
		} else {
			logger.Debug().
				Dur("response_time", time.Since(redisStart)).
				Msg("redis health check passed")
		}

		response.Checks["redis"] = result
	}

	status := http.StatusOK
	if response.Status != "healthy" {
		status = http.StatusServiceUnavailable

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")
	}

	if err := c.JSON(status, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) recordFailure(check string, attrs map[string]interface{}) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	attrs["check_type"] = check
	attrs["operation"] = "health_check"
	attrs["error_type"] = check + "_unhealthy"
	app.RecordCustomEvent("HealthCheckError", attrs)
}
