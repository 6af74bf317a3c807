package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mdshopp/storefront/internal/service"
	"github.com/mdshopp/storefront/internal/transport"
	"github.com/mdshopp/storefront/pkg/logging"
)

type CheckoutHTTP struct {
	Svc *service.CheckoutService
}

func sessionID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

func (h *CheckoutHTTP) Open(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.open")

	sess, err := h.Svc.Open(ctx, cartID(c))
	if err != nil {
		return fail(l, "checkout_open_error", err, "cannot open checkout")
	}

	return c.JSON(http.StatusCreated, sess)
}

func (h *CheckoutHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.get")

	id, err := sessionID(c)
	if err != nil {
		return badRequest(l, "checkout_get_error", "id is not a uuid", err)
	}

	sess, err := h.Svc.Get(ctx, id)
	if err != nil {
		return fail(l, "checkout_get_error", err, "cannot get checkout")
	}

	return c.JSON(http.StatusOK, sess)
}

func (h *CheckoutHTTP) Submit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.submit")

	id, err := sessionID(c)
	if err != nil {
		return badRequest(l, "checkout_submit_error", "id is not a uuid", err)
	}

	var req transport.CheckoutForm
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "checkout_submit_error", "invalid body", err)
	}

	sess, err := h.Svc.Submit(ctx, id, req)
	if err != nil {
		return fail(l, "checkout_submit_error", err, "cannot submit checkout")
	}

	return c.JSON(http.StatusAccepted, sess)
}

func (h *CheckoutHTTP) Close(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.close")

	id, err := sessionID(c)
	if err != nil {
		return badRequest(l, "checkout_close_error", "id is not a uuid", err)
	}

	if err := h.Svc.Close(ctx, id); err != nil {
		return fail(l, "checkout_close_error", err, "cannot close checkout")
	}

	return c.NoContent(http.StatusNoContent)
}
