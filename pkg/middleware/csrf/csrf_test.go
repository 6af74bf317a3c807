package csrf

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEcho() *echo.Echo {
	e := echo.New()
	g := e.Group("/admin", Middleware(Config{SkipPaths: []string{"/admin/login"}}))
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	g.GET("/orders", ok)
	g.PATCH("/orders/:id", ok)
	g.POST("/login", ok)
	return e
}

func TestMiddleware_IssuesTokenOnSafeMethods(t *testing.T) {
	e := newEcho()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/orders", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	tok := rec.Header().Get("X-CSRF-Token")
	assert.NotEmpty(t, tok)

	var found bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "XSRF-TOKEN" {
			found = true
			assert.Equal(t, tok, ck.Value)
			assert.False(t, ck.HttpOnly)
		}
	}
	assert.True(t, found)
}

func TestMiddleware_UnsafeMethods(t *testing.T) {
	e := newEcho()

	tests := []struct {
		name   string
		origin string
		header string
		want   int
	}{
		{name: "matching token", origin: "http://example.com", header: "tok", want: http.StatusOK},
		{name: "missing header", origin: "http://example.com", want: http.StatusForbidden},
		{name: "wrong token", origin: "http://example.com", header: "other", want: http.StatusForbidden},
		{name: "foreign origin", origin: "http://evil.test", header: "tok", want: http.StatusForbidden},
		{name: "no origin", header: "tok", want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/admin/orders/1", nil)
			req.AddCookie(&http.Cookie{Name: "XSRF-TOKEN", Value: "tok"})
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.header != "" {
				req.Header.Set("X-CSRF-Token", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestMiddleware_SkipPaths(t *testing.T) {
	e := newEcho()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
