package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/estate-api/internal/config"
	"github.com/deppfellow/estate-api/internal/errs"
	"github.com/deppfellow/estate-api/internal/server"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Intake: config.IntakeConfig{InquiryRateLimit: 0.0001, InquiryBurst: 2},
		},
		Logger: &logger,
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", rec.Body.String())
	})
}

func TestRequestIDRejectsUnsafeValues(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, id := range []string{"has space", "line\nbreak", strings.Repeat("a", 129)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, id)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		got := rec.Header().Get(RequestIDHeader)
		assert.NotEqual(t, id, got)
		assert.Len(t, got, 36)
	}
}

func TestGetLoggerWithoutEnhancer(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, GetLogger(c))
}

func TestGlobalErrorHandler(t *testing.T) {
	global := NewGlobalMiddlewares(newTestServer())

	tests := []struct {
		name   string
		err    error
		status int
		body   map[string]any
	}{
		{
			name:   "validation error",
			err:    errs.NewValidationError([]errs.FieldError{{Field: "email", Message: "Email is required"}}),
			status: http.StatusBadRequest,
			body: map[string]any{
				"success": false,
				"errors":  []any{map[string]any{"field": "email", "message": "Email is required"}},
			},
		},
		{
			name:   "unknown route",
			err:    echo.ErrNotFound,
			status: http.StatusNotFound,
			body:   map[string]any{"success": false, "code": "NOT_FOUND", "message": "Route not found"},
		},
		{
			name:   "echo error",
			err:    echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			status: http.StatusMethodNotAllowed,
			body:   map[string]any{"success": false, "code": "METHOD_NOT_ALLOWED", "message": "nope"},
		},
		{
			name:   "plain error",
			err:    errors.New("redis: connection refused"),
			status: http.StatusInternalServerError,
			body:   map[string]any{"success": false, "code": "INTERNAL_SERVER_ERROR", "message": "Internal Server Error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

			global.GlobalErrorHandler(tt.err, c)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, decodeBody(t, rec))
		})
	}
}

func TestGlobalErrorHandlerCommitted(t *testing.T) {
	global := NewGlobalMiddlewares(newTestServer())

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusAccepted))

	global.GlobalErrorHandler(errors.New("late"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestInquiryRateLimit(t *testing.T) {
	s := newTestServer()
	mw := NewMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler
	e.POST("/inquiries", func(c echo.Context) error {
		return c.NoContent(http.StatusAccepted)
	}, mw.RateLimit.Inquiries())

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/inquiries", nil)
		req.RemoteAddr = ip + ":4321"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusAccepted, send("192.0.2.1").Code)
	assert.Equal(t, http.StatusAccepted, send("192.0.2.1").Code)

	rec := send("192.0.2.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeBody(t, rec)["code"])

	assert.Equal(t, http.StatusAccepted, send("192.0.2.2").Code)
}

func TestEnhanceContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	s := newTestServer()
	s.Logger = &logger

	e := echo.New()
	e.Use(RequestID(), NewContextEnhancer(s).EnhanceContext())
	e.GET("/ping", func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from context")
		GetLogger(c).Info().Msg("from echo")
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	e.ServeHTTP(httptest.NewRecorder(), req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, `"request_id":"req-42"`)
		assert.Contains(t, line, `"path":"/ping"`)
	}
}

func TestResponseStatus(t *testing.T) {
	s := newTestServer()
	mw := NewMiddlewares(s)

	var statuses []int
	e := echo.New()
	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			statuses = append(statuses, responseStatus(c, err))
			return err
		}
	})
	e.POST("/inquiries", func(c echo.Context) error {
		return c.NoContent(http.StatusAccepted)
	}, mw.RateLimit.Inquiries())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/inquiries", nil)
		req.RemoteAddr = "198.51.100.7:4321"
		e.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, []int{http.StatusAccepted, http.StatusAccepted, http.StatusTooManyRequests}, statuses)
}
