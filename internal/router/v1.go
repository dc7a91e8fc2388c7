package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/estate-api/internal/handler"
	"github.com/deppfellow/estate-api/internal/middleware"
)

func registerRuleRoutes(v1 *echo.Group, h *handler.Handlers) {
	v1.GET("/rule-sets", h.Rules.ListRuleSets)
	v1.GET("/rule-sets/:name", h.Rules.GetRuleSet)
	v1.POST("/validate/:name", h.Rules.Validate)
}

func registerIntakeRoutes(v1 *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	intake := h.Intake

	v1.POST("/auth/register", handler.Handle(intake.Handler, intake.Register, http.StatusAccepted))
	v1.POST("/inquiries", handler.Handle(intake.Handler, intake.CreateInquiry, http.StatusAccepted), m.RateLimit.Inquiries())

	admin := v1.Group("/admin", m.Auth.RequireAuth)
	admin.POST("/properties", handler.Handle(intake.Handler, intake.CreateProperty, http.StatusAccepted))
	admin.PUT("/properties/:id", handler.Handle(intake.Handler, intake.UpdateProperty, http.StatusAccepted))
	admin.POST("/blog-posts", handler.Handle(intake.Handler, intake.CreateBlogPost, http.StatusAccepted))
	admin.PUT("/blog-posts/:id", handler.Handle(intake.Handler, intake.UpdateBlogPost, http.StatusAccepted))
}
