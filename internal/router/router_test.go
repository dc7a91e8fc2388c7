package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/estate-api/internal/config"
	"github.com/deppfellow/estate-api/internal/handler"
	"github.com/deppfellow/estate-api/internal/server"
	"github.com/deppfellow/estate-api/internal/service"
)

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Server:        config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
			Auth:          config.AuthConfig{SecretKey: "sk_test_dummy"},
			Intake:        config.DefaultIntakeConfig(),
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}

	services := &service.Services{
		Auth:        service.NewAuthService(s),
		Submissions: service.NewSubmissionService(nil),
	}
	return NewRouter(s, handler.NewHandlers(s, services))
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"code":"NOT_FOUND","message":"Route not found"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestAdminRequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/properties", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"code":"UNAUTHORIZED","message":"Unauthorized"}`, rec.Body.String())
}

func TestDryRunThroughRouter(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate/registration",
		strings.NewReader(`{"name":"","email":"a@b.co","password":"secret1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"errors":[
		{"field":"name","message":"Name is required"},
		{"field":"name","message":"Name must be between 2 and 50 characters"}
	]}`, rec.Body.String())
}
