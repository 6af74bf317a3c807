package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	middleware "github.com/mdshopp/storefront/pkg/middleware/auth"
	"github.com/mdshopp/storefront/pkg/middleware/csrf"
)

type Deps struct {
	ProductHandler  *ProductHTTP
	CartHandler     *CartHTTP
	CheckoutHandler *CheckoutHTTP
	AdminHandler    *AdminHTTP
	OrderHandler    *OrderHTTP
	SettingsHandler *SettingsHTTP

	AdminGuard *middleware.AdminMiddleware

	CSRFEnabled bool
	// LoginRatePerMin caps login attempts per client IP; 0 disables the limit.
	LoginRatePerMin int
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.GET("/settings", d.SettingsHandler.Get)

	catalog := e.Group("/catalog")
	catalog.GET("/categories", d.ProductHandler.Categories)
	catalog.GET("/products/search", d.ProductHandler.SearchProducts)
	catalog.GET("/products", d.ProductHandler.GetProducts)
	catalog.GET("/products/:id", d.ProductHandler.GetProduct)

	cart := e.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.DELETE("", d.CartHandler.ClearCart)
	cart.POST("/items", d.CartHandler.AddToCart)
	cart.PATCH("/items/:id", d.CartHandler.UpdateQuantity)
	cart.DELETE("/items/:id", d.CartHandler.RemoveItem)

	checkout := e.Group("/checkout")
	checkout.POST("", d.CheckoutHandler.Open)
	checkout.GET("/:id", d.CheckoutHandler.Get)
	checkout.POST("/:id/submit", d.CheckoutHandler.Submit)
	checkout.DELETE("/:id", d.CheckoutHandler.Close)

	var adminMW []echo.MiddlewareFunc
	if d.CSRFEnabled {
		cfg := csrf.DefaultConfig()
		cfg.Secure = true
		cfg.SkipPaths = []string{"/admin/login"}
		adminMW = append(adminMW, csrf.Middleware(cfg))
	}
	admin := e.Group("/admin", adminMW...)

	var loginMW []echo.MiddlewareFunc
	if d.LoginRatePerMin > 0 {
		loginMW = append(loginMW, loginLimiter(d.LoginRatePerMin))
	}
	admin.POST("/login", d.AdminHandler.Login, loginMW...)

	guarded := admin.Group("", d.AdminGuard.RequireAdmin)
	guarded.POST("/logout", d.AdminHandler.Logout)
	guarded.GET("/session", d.AdminHandler.Session)

	guarded.GET("/products", d.ProductHandler.GetProducts)
	guarded.POST("/products", d.ProductHandler.CreateProduct)
	guarded.PUT("/products/:id", d.ProductHandler.UpdateProduct)
	guarded.DELETE("/products/:id", d.ProductHandler.DeleteProduct)

	guarded.GET("/orders", d.OrderHandler.ListOrders)
	guarded.PATCH("/orders/:id", d.OrderHandler.UpdateStatus)
	guarded.GET("/orders/:id/receipt", d.OrderHandler.Receipt)

	quickLinks := d.SettingsHandler.quickLinks()
	categories := d.SettingsHandler.categories()
	guarded.GET("/settings", d.SettingsHandler.Get)
	guarded.PUT("/settings", d.SettingsHandler.Replace)
	guarded.POST("/settings/quick-links", quickLinks.addHandler("quick_link"))
	guarded.PUT("/settings/quick-links/:index", quickLinks.updateHandler("quick_link"))
	guarded.DELETE("/settings/quick-links/:index", quickLinks.removeHandler("quick_link"))
	guarded.POST("/settings/categories", categories.addHandler("category"))
	guarded.PUT("/settings/categories/:index", categories.updateHandler("category"))
	guarded.DELETE("/settings/categories/:index", categories.removeHandler("category"))
	guarded.PUT("/settings/social/:platform", d.SettingsHandler.SetSocialLink)
}

func loginLimiter(perMinute int) echo.MiddlewareFunc {
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(perMinute) / 60),
			Burst:     perMinute,
			ExpiresIn: 10 * time.Minute,
		}),
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
		},
	})
}
