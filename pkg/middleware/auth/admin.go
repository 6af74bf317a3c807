package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mdshopp/storefront/pkg/logging"
	"github.com/mdshopp/storefront/pkg/tokens"
)

// SessionChecker reports whether the persisted admin session flag is set.
type SessionChecker interface {
	LoggedIn(ctx context.Context) (bool, error)
}

type AdminMiddleware struct {
	JWTSecret []byte
	Sessions  SessionChecker
}

func NewAdminMiddleware(secret []byte, sessions SessionChecker) *AdminMiddleware {
	return &AdminMiddleware{
		JWTSecret: secret,
		Sessions:  sessions,
	}
}

// RequireAdmin accepts a request only with a valid admin access token and
// an open admin session. Both are checked on every request.
func (m *AdminMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		l := logging.FromContext(ctx).With("middleware", "require_admin")

		accessCookie, err := c.Cookie(tokens.AccessCookieName)
		if err != nil || accessCookie.Value == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
		}

		claims, err := tokens.AccessClaimsFromToken(accessCookie.Value, m.JWTSecret)
		if err != nil {
			clearAuthCookie(c)
			l.Warn("admin_token_rejected", "error", err)
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
		}
		if claims.Role != tokens.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}

		open, err := m.Sessions.LoggedIn(ctx)
		if err != nil {
			l.Error("admin_session_check_failed", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot check admin session")
		}
		if !open {
			clearAuthCookie(c)
			return echo.NewHTTPError(http.StatusUnauthorized, "admin session closed")
		}

		c.Set("admin", claims.Subject)
		return next(c)
	}
}

func clearAuthCookie(c echo.Context) {
	c.SetCookie(tokens.DeleteCookie(tokens.AccessCookieName, "/"))
}
