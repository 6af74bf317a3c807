package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mdshopp/storefront/internal/service"
	"github.com/mdshopp/storefront/internal/transport"
	"github.com/mdshopp/storefront/pkg/logging"
	"github.com/mdshopp/storefront/pkg/tokens"
)

type AdminHTTP struct {
	Svc *service.AdminService
}

func (h *AdminHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "login_error", "invalid body", err)
	}

	res, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		return fail(l, "login_error", err, "cannot open admin session")
	}

	c.SetCookie(tokens.CreateCookie(tokens.AccessCookieName, res.AccessToken, "/", res.AccessExp))
	return c.JSON(http.StatusOK, map[string]any{"loggedIn": true})
}

func (h *AdminHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.logout")

	if err := h.Svc.Logout(ctx); err != nil {
		return fail(l, "logout_error", err, "cannot close admin session")
	}

	c.SetCookie(tokens.DeleteCookie(tokens.AccessCookieName, "/"))
	l.Info("logout_success")
	return c.JSON(http.StatusOK, map[string]any{"loggedIn": false})
}

// Session is reachable only through the admin guard, so answering at all
// means the session is open.
func (h *AdminHTTP) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"loggedIn": true,
		"username": c.Get("admin"),
	})
}
