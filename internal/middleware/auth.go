package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/estate-api/internal/errs"
	"github.com/deppfellow/estate-api/internal/server"
)

type AuthMiddleware struct {
	server *server.Server
}

func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
	}
}

// RequireAuth guards the back-office routes with a Clerk session token from
// the Authorization header. On success the user ID, organisation role and
// permissions are stored on the Echo context.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return echo.WrapMiddleware(
		clerkhttp.WithHeaderAuthorization(
			clerkhttp.AuthorizationFailureHandler(http.HandlerFunc(auth.writeUnauthorized)),
		))(
		func(c echo.Context) error {
			start := time.Now()

			claims, ok := clerk.SessionClaimsFromContext(c.Request().Context())
			if !ok {
				auth.server.Logger.Error().
					Str("function", "RequireAuth").
					Str("request_id", GetRequestID(c)).
					Dur("duration", time.Since(start)).
					Msg("could not get session claims from context")

				return errs.NewUnauthorizedError("Unauthorized", false)
			}

			c.Set(UserIDKey, claims.Subject)
			c.Set(UserRoleKey, claims.ActiveOrganizationRole)
			c.Set("permissions", claims.Claims.ActiveOrganizationPermissions)

			auth.server.Logger.Info().
				Str("function", "RequireAuth").
				Str("user_id", claims.Subject).
				Str("request_id", GetRequestID(c)).
				Dur("duration", time.Since(start)).
				Msg("user authenticated successfully")

			return next(c)
		})
}

// writeUnauthorized runs outside Echo, so it writes the error body itself.
func (auth *AuthMiddleware) writeUnauthorized(w http.ResponseWriter, r *http.Request) {
	body := errs.NewUnauthorizedError("Unauthorized", false).Response()

	w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w.WriteHeader(http.StatusUnauthorized)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		auth.server.Logger.Error().
			Err(err).
			Str("function", "RequireAuth").
			Msg("failed to write JSON response")
		return
	}

	auth.server.Logger.Warn().
		Str("function", "RequireAuth").
		Str("path", r.URL.Path).
		Msg("rejected request without a valid session")
}
