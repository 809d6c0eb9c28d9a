package middleware

import (
	"net/http"
	"strings"

	"casetrack-backend/internal/auth"
	userDomain "casetrack-backend/internal/domain/user"
	"casetrack-backend/pkg/id"

	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

type AuthMiddleware struct {
	issuer *auth.TokenIssuer
	users  userDomain.Repository
}

func NewAuthMiddleware(issuer *auth.TokenIssuer, users userDomain.Repository) *AuthMiddleware {
	return &AuthMiddleware{issuer: issuer, users: users}
}

// Authenticate validates the bearer token and re-checks the user row
// live, so deactivating an account takes effect before the token
// expires. The resolved actor is attached to the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if header == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header required"})
		}
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid authorization format"})
		}

		claims, err := m.issuer.Validate(parts[1])
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
		}

		usr, err := m.users.GetByID(c.Request().Context(), claims.UserID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "user not found"})
		}
		if !usr.Active {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "account suspended"})
		}

		requestID := strings.TrimSpace(c.Request().Header.Get("Ax-Request-Id"))
		if requestID == "" {
			requestID = id.NewRequestID()
		}
		c.Set(actorKey, userDomain.Actor{
			ID:        usr.ID,
			Role:      usr.Role,
			IP:        c.RealIP(),
			RequestID: requestID,
		})
		return next(c)
	}
}

// RequireRole gates a route to the given roles. It runs after
// Authenticate and trusts the live role fetched there.
func RequireRole(roles ...userDomain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
			}
			for _, r := range roles {
				if actor.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient permissions"})
		}
	}
}

// ActorFrom returns the authenticated actor set by Authenticate.
func ActorFrom(c echo.Context) (userDomain.Actor, bool) {
	actor, ok := c.Get(actorKey).(userDomain.Actor)
	return actor, ok
}
