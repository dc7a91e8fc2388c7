package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/estate-api/internal/server"
)

type OpenAPIHandler struct {
	Handler
	templatePath string
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler:      NewHandler(s),
		templatePath: "static/openapi.html",
	}
}

// ServeOpenAPIUI renders the API reference page, which loads
// /static/openapi.json.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := os.ReadFile(h.templatePath)
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
