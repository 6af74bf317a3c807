package httpserver

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdshopp/storefront/internal/models"
	"github.com/mdshopp/storefront/internal/service"
	"github.com/mdshopp/storefront/internal/transport"
	"github.com/mdshopp/storefront/pkg/middleware/csrf"
	"github.com/mdshopp/storefront/pkg/tokens"
)

func TestAdmin_LoginLogout(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, envOpts{csrf: true})

	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/admin/session", nil).Code)

	rec := env.do(t, http.MethodPost, "/admin/login", transport.LoginRequest{Username: "admin", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, env.jar, tokens.AccessCookieName)

	env.login(t)
	require.Contains(t, env.jar, tokens.AccessCookieName)
	require.Contains(t, env.jar, csrf.DefaultConfig().CookieName)

	v, found, err := env.Store.Get(t.Context(), service.AdminSessionKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", v)

	rec = env.do(t, http.MethodPost, "/admin/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotContains(t, env.jar, tokens.AccessCookieName)

	_, found, err = env.Store.Get(t.Context(), service.AdminSessionKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAdmin_TokenWithoutSessionIsRejected(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, envOpts{})
	env.login(t)

	// the session flag is gone, as after a logout from another browser
	require.NoError(t, env.Store.Delete(t.Context(), service.AdminSessionKey))

	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/admin/orders", nil).Code)
}

func TestAdmin_CSRFRequiredForMutations(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, envOpts{csrf: true})
	env.login(t)

	token := env.jar[csrf.DefaultConfig().CookieName]
	delete(env.jar, csrf.DefaultConfig().CookieName)

	rec := env.do(t, http.MethodPost, "/admin/products", transport.ProductForm{Name: "x", Price: 1})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	env.jar[csrf.DefaultConfig().CookieName] = token
	rec = env.do(t, http.MethodPost, "/admin/products", transport.ProductForm{Name: "x", Price: 1})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestAdmin_LoginRateLimited(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, envOpts{loginRate: 2})

	bad := transport.LoginRequest{Username: "admin", Password: "guess"}
	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodPost, "/admin/login", bad).Code)
	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodPost, "/admin/login", bad).Code)
	assert.Equal(t, http.StatusTooManyRequests, env.do(t, http.MethodPost, "/admin/login", bad).Code)
}

func TestAdmin_ProductCRUD(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, envOpts{csrf: true})

	form := transport.ProductForm{Name: "Tapis de Yoga", Price: 12000, Category: "Sport", Description: "Antidérapant"}
	// the first admin request hands out the CSRF cookie even when unauthenticated
	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/admin/products", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodPost, "/admin/products", form).Code)

	env.login(t)

	rec := env.do(t, http.MethodPost, "/admin/products", form)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[models.ProductView](t, rec)
	assert.Equal(t, 9, created.ID)
	assert.Equal(t, 4.5, created.Rating)
	assert.True(t, created.InStock)

	rec = env.do(t, http.MethodPost, "/admin/products", transport.ProductForm{Name: "", Price: 10})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	orig := int64(15000)
	form.OriginalPrice = &orig
	rec = env.do(t, http.MethodPut, "/admin/products/9", form)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 20, decode[models.ProductView](t, rec).Discount)

	rec = env.do(t, http.MethodGet, "/admin/products?category=Sport", nil)
	sport := decode[listResponse[models.ProductView]](t, rec)
	require.Len(t, sport.Data, 1)
	assert.Equal(t, "Tapis de Yoga", sport.Data[0].Name)

	assert.Equal(t, http.StatusNoContent, env.do(t, http.MethodDelete, "/admin/products/9", nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, "/admin/products/9", nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/catalog/products/9", nil).Code)
}

func TestAdmin_OrdersAndReceipt(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, envOpts{csrf: true})

	env.do(t, http.MethodPost, "/cart/items", transport.AddToCartRequest{ProductID: 2})
	sess := decode[service.CheckoutSession](t, env.do(t, http.MethodPost, "/checkout", nil))
	rec := env.do(t, http.MethodPost, "/checkout/"+sess.ID.String()+"/submit", transport.CheckoutForm{
		Customer:      models.CustomerInfo{Name: "Mariam", Address: "Bastos, Yaoundé"},
		PaymentMethod: models.PaymentCashOnDelivery,
	})
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	env.Timers.fire()

	env.login(t)

	rec = env.do(t, http.MethodGet, "/admin/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[map[string][]models.Order](t, rec)["data"]
	require.Len(t, list, 1)
	order := list[0]
	assert.Equal(t, "Mariam", order.PhoneNumber)
	assert.Equal(t, models.StatusPending, order.Status)

	path := "/admin/orders/" + itoa64(order.ID)

	rec = env.do(t, http.MethodPatch, path, transport.UpdateStatusRequest{Status: models.StatusDelivered})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, models.StatusDelivered, decode[models.Order](t, rec).Status)

	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodPatch, path, transport.UpdateStatusRequest{Status: "lost"}).Code)
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodPatch, "/admin/orders/1", transport.UpdateStatusRequest{Status: models.StatusCancelled}).Code)

	rec = env.do(t, http.MethodGet, path+"/receipt", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/admin/orders/1/receipt", nil).Code)
}

func TestAdmin_Settings(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, envOpts{csrf: true})
	env.login(t)

	rec := env.do(t, http.MethodPost, "/admin/settings/quick-links", transport.LabelRequest{Label: "Promos"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Promos", decode[models.SiteSettings](t, rec).QuickLinks[5])

	rec = env.do(t, http.MethodPut, "/admin/settings/categories/0", transport.LabelRequest{Label: "High-Tech"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "High-Tech", decode[models.SiteSettings](t, rec).Categories[0])

	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodDelete, "/admin/settings/categories/9", nil).Code)
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodDelete, "/admin/settings/quick-links/x", nil).Code)

	rec = env.do(t, http.MethodDelete, "/admin/settings/quick-links/0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Produits", decode[models.SiteSettings](t, rec).QuickLinks[0])

	rec = env.do(t, http.MethodPut, "/admin/settings/social/whatsapp", transport.SocialLinkRequest{URL: "https://wa.me/221778762082"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodPut, "/admin/settings/social/tiktok", transport.SocialLinkRequest{URL: "x"}).Code)

	next := service.DefaultSettings()
	next.SiteName = "MD shopp Douala"
	rec = env.do(t, http.MethodPut, "/admin/settings", next)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	public := decode[models.SiteSettings](t, env.do(t, http.MethodGet, "/settings", nil))
	assert.Equal(t, "MD shopp Douala", public.SiteName)
	assert.Empty(t, public.SocialMedia["whatsapp"])
}
