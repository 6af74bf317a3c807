package httpserver

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mdshopp/storefront/internal/models"
	"github.com/mdshopp/storefront/internal/service"
	"github.com/mdshopp/storefront/internal/transport"
	"github.com/mdshopp/storefront/pkg/logging"
)

type SettingsHTTP struct {
	Svc *service.SettingsService
}

func (h *SettingsHTTP) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Svc.Get(c.Request().Context()))
}

func (h *SettingsHTTP) Replace(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "settings.replace")

	var req models.SiteSettings
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "settings_replace_error", "invalid body", err)
	}

	s, err := h.Svc.Replace(ctx, req)
	if err != nil {
		return fail(l, "settings_replace_error", err, "cannot save settings")
	}

	l.Info("settings_replaced")
	return c.JSON(http.StatusOK, s)
}

type listEdit struct {
	add    func(ctx context.Context, label string) (models.SiteSettings, error)
	update func(ctx context.Context, i int, label string) (models.SiteSettings, error)
	remove func(ctx context.Context, i int) (models.SiteSettings, error)
}

func (h *SettingsHTTP) quickLinks() listEdit {
	return listEdit{add: h.Svc.AddQuickLink, update: h.Svc.UpdateQuickLink, remove: h.Svc.RemoveQuickLink}
}

func (h *SettingsHTTP) categories() listEdit {
	return listEdit{add: h.Svc.AddCategory, update: h.Svc.UpdateCategory, remove: h.Svc.RemoveCategory}
}

func (e listEdit) addHandler(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		l := logging.FromContext(ctx).With("handler", "settings.add_"+name)

		var req transport.LabelRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(l, "settings_edit_error", "invalid body", err)
		}

		s, err := e.add(ctx, req.Label)
		if err != nil {
			return fail(l, "settings_edit_error", err, "cannot save settings")
		}
		return c.JSON(http.StatusCreated, s)
	}
}

func (e listEdit) updateHandler(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		l := logging.FromContext(ctx).With("handler", "settings.update_"+name)

		i, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			return badRequest(l, "settings_edit_error", "index is not an integer", err)
		}

		var req transport.LabelRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(l, "settings_edit_error", "invalid body", err)
		}

		s, err := e.update(ctx, i, req.Label)
		if err != nil {
			return fail(l, "settings_edit_error", err, "cannot save settings")
		}
		return c.JSON(http.StatusOK, s)
	}
}

func (e listEdit) removeHandler(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		l := logging.FromContext(ctx).With("handler", "settings.remove_"+name)

		i, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			return badRequest(l, "settings_edit_error", "index is not an integer", err)
		}

		s, err := e.remove(ctx, i)
		if err != nil {
			return fail(l, "settings_edit_error", err, "cannot save settings")
		}
		return c.JSON(http.StatusOK, s)
	}
}

func (h *SettingsHTTP) SetSocialLink(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "settings.set_social_link")

	var req transport.SocialLinkRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "settings_edit_error", "invalid body", err)
	}

	s, err := h.Svc.SetSocialLink(ctx, c.Param("platform"), req.URL)
	if err != nil {
		return fail(l, "settings_edit_error", err, "cannot save settings")
	}
	return c.JSON(http.StatusOK, s)
}
