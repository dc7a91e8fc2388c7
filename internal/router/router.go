// Package router builds the Echo instance: global middleware, system routes
// and the versioned intake API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/estate-api/internal/handler"
	"github.com/deppfellow/estate-api/internal/middleware"
	"github.com/deppfellow/estate-api/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.Recover(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.RequestLogger(),
	)

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1", middlewares.Global.BodyLimit())
	registerRuleRoutes(v1, h)
	registerIntakeRoutes(v1, h, middlewares)

	return router
}
