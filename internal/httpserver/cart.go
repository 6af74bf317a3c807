package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mdshopp/storefront/internal/service"
	"github.com/mdshopp/storefront/internal/transport"
	"github.com/mdshopp/storefront/pkg/logging"
)

const (
	CartCookieName = "cartID"
	cartCookieTTL  = 30 * 24 * time.Hour
)

type CartHTTP struct {
	Svc *service.CartService
}

// cartID reads the shopper's cart id from its cookie. A missing or
// malformed cookie gets a fresh id, issued back to the client.
func cartID(c echo.Context) uuid.UUID {
	if ck, err := c.Cookie(CartCookieName); err == nil {
		if id, err := uuid.Parse(ck.Value); err == nil {
			return id
		}
	}

	id := uuid.New()
	c.SetCookie(&http.Cookie{
		Name:     CartCookieName,
		Value:    id.String(),
		Path:     "/",
		Expires:  time.Now().Add(cartCookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func itemID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	cart := h.Svc.GetCart(ctx, cartID(c))
	return c.JSON(http.StatusOK, transport.NewCartResponse(cart, ""))
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_to_cart")

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "add_to_cart_error", "invalid body", err)
	}
	if req.ProductID <= 0 {
		return badRequest(l, "add_to_cart_error", "product_id required", nil)
	}

	cart, notice, err := h.Svc.AddToCart(ctx, cartID(c), req.ProductID)
	if err != nil {
		return fail(l, "add_to_cart_error", err, "cannot add to cart")
	}

	return c.JSON(http.StatusOK, transport.NewCartResponse(cart, notice))
}

func (h *CartHTTP) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_quantity")

	id, err := itemID(c)
	if err != nil {
		return badRequest(l, "update_quantity_error", "id is not an integer", err)
	}

	var req transport.UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "update_quantity_error", "invalid body", err)
	}

	cart, err := h.Svc.UpdateQuantity(ctx, cartID(c), id, req.Quantity)
	if err != nil {
		return fail(l, "update_quantity_error", err, "cannot update cart")
	}

	return c.JSON(http.StatusOK, transport.NewCartResponse(cart, ""))
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_item")

	id, err := itemID(c)
	if err != nil {
		return badRequest(l, "remove_item_error", "id is not an integer", err)
	}

	cart, notice, err := h.Svc.RemoveItem(ctx, cartID(c), id)
	if err != nil {
		return fail(l, "remove_item_error", err, "cannot update cart")
	}

	return c.JSON(http.StatusOK, transport.NewCartResponse(cart, notice))
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	cart := h.Svc.ClearCart(ctx, cartID(c))
	return c.JSON(http.StatusOK, transport.NewCartResponse(cart, ""))
}
