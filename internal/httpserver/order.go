package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mdshopp/storefront/internal/receipt"
	"github.com/mdshopp/storefront/internal/service"
	"github.com/mdshopp/storefront/internal/transport"
	"github.com/mdshopp/storefront/pkg/logging"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Settings *service.SettingsService
}

func orderID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list_orders")

	orders, err := h.Svc.ListOrders(ctx)
	if err != nil {
		return fail(l, "list_orders_error", err, "cannot read orders")
	}

	return c.JSON(http.StatusOK, map[string]any{"data": orders})
}

func (h *OrderHTTP) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_status")

	id, err := orderID(c)
	if err != nil {
		return badRequest(l, "update_status_error", "id is not an integer", err)
	}

	var req transport.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "update_status_error", "invalid body", err)
	}

	order, err := h.Svc.UpdateOrderStatus(ctx, id, req.Status)
	if err != nil {
		return fail(l, "update_status_error", err, "cannot update order")
	}

	l.Info("update_status_success", "order_id", id, "status", req.Status)
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) Receipt(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.receipt")

	id, err := orderID(c)
	if err != nil {
		return badRequest(l, "receipt_error", "id is not an integer", err)
	}

	order, err := h.Svc.GetOrder(ctx, id)
	if err != nil {
		return fail(l, "receipt_error", err, "cannot read orders")
	}

	pdf, err := receipt.Render(order, h.Settings.Get(ctx).SiteName)
	if err != nil {
		return fail(l, "receipt_error", err, "cannot render receipt")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=receipt-"+strconv.FormatInt(id, 10)+".pdf")
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
