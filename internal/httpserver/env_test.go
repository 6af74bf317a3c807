package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/mdshopp/storefront/internal/repo"
	"github.com/mdshopp/storefront/internal/search"
	"github.com/mdshopp/storefront/internal/service"
	"github.com/mdshopp/storefront/pkg/events"
	"github.com/mdshopp/storefront/pkg/kvstore"
	middleware "github.com/mdshopp/storefront/pkg/middleware/auth"
	"github.com/mdshopp/storefront/pkg/middleware/csrf"
)

const testOrigin = "http://example.com"

type heldTimers struct {
	mu  sync.Mutex
	fns []func()
}

func (h *heldTimers) Schedule(_ time.Duration, f func()) func() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fns = append(h.fns, f)
	return func() bool { return true }
}

func (h *heldTimers) fire() {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()
	for _, f := range fns {
		f()
	}
}

type testEnv struct {
	E      *echo.Echo
	Store  kvstore.Store
	Timers *heldTimers

	// cookies carried between requests, like a browser would
	jar map[string]*http.Cookie
}

type envOpts struct {
	csrf      bool
	loginRate int
}

func newTestEnv(t *testing.T, opts envOpts) *testEnv {
	t.Helper()

	store := kvstore.NewMemory()
	secret := []byte("test-jwt-secret")
	catalogRepo := repo.NewCatalogRepo(repo.SeedProducts())

	catalog := &service.CatalogService{Repo: catalogRepo, Search: search.NewMemory(), Events: events.Nop{}}
	require.NoError(t, catalog.Reindex(t.Context()))
	carts := &service.CartService{Repo: repo.NewCartRepo(), Catalog: catalogRepo, Events: events.Nop{}}
	orders := &service.OrderService{Repo: &repo.OrderRepo{Store: store}, Events: events.Nop{}}
	settings := service.NewSettingsService(service.DefaultSettings())

	timers := &heldTimers{}
	checkout := service.NewCheckoutService(carts, orders, 2*time.Second)
	checkout.Schedule = timers.Schedule

	admin, err := service.NewAdminService(store, "admin", "mdshop2024", secret, time.Hour)
	require.NoError(t, err)

	e := echo.New()
	Register(e, &Deps{
		ProductHandler:  &ProductHTTP{Svc: catalog},
		CartHandler:     &CartHTTP{Svc: carts},
		CheckoutHandler: &CheckoutHTTP{Svc: checkout},
		AdminHandler:    &AdminHTTP{Svc: admin},
		OrderHandler:    &OrderHTTP{Svc: orders, Settings: settings},
		SettingsHandler: &SettingsHTTP{Svc: settings},
		AdminGuard:      middleware.NewAdminMiddleware(secret, admin),
		CSRFEnabled:     opts.csrf,
		LoginRatePerMin: opts.loginRate,
	})

	return &testEnv{E: e, Store: store, Timers: timers, jar: map[string]*http.Cookie{}}
}

func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rdr *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	} else {
		rdr = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Origin", testOrigin)
	for _, ck := range env.jar {
		req.AddCookie(ck)
	}
	if ck, ok := env.jar[csrf.DefaultConfig().CookieName]; ok {
		req.Header.Set(csrf.DefaultConfig().HeaderName, ck.Value)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(env.jar, ck.Name)
			continue
		}
		env.jar[ck.Name] = ck
	}
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (env *testEnv) login(t *testing.T) {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/admin/login", map[string]string{"username": "admin", "password": "mdshop2024"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	// picks up the CSRF cookie for later unsafe requests
	rec = env.do(t, http.MethodGet, "/admin/session", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func itoa64(v int64) string {
	return strconv.FormatInt(v, 10)
}
