package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/mdshopp/storefront/pkg/events"
	"github.com/mdshopp/storefront/pkg/kvstore"
	"github.com/mdshopp/storefront/pkg/logging"
	middleware "github.com/mdshopp/storefront/pkg/middleware/auth"
	loggingmw "github.com/mdshopp/storefront/pkg/middleware/logging"

	storefrontcfg "github.com/mdshopp/storefront/internal/config"
	"github.com/mdshopp/storefront/internal/httpserver"
	"github.com/mdshopp/storefront/internal/repo"
	"github.com/mdshopp/storefront/internal/search"
	"github.com/mdshopp/storefront/internal/service"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := storefrontcfg.Load()

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)
	baseCtx := logging.IntoContext(context.Background(), logger)

	ctx, cancel := context.WithTimeout(baseCtx, 10*time.Second)
	store, err := kvstore.Open(ctx, cfg.StorageURL)
	cancel()
	if err != nil {
		log.Fatalf("storage open: %v", err)
	}

	publisher, err := events.New(events.Options{
		Driver:       cfg.EventsDriver,
		KafkaBrokers: cfg.KafkaBrokers,
		RabbitMQURL:  cfg.RabbitMQURL,
	})
	if err != nil {
		log.Fatalf("events: %v", err)
	}

	settings := service.DefaultSettings()
	if cfg.SettingsFile != "" {
		if settings, err = service.LoadSettingsFile(cfg.SettingsFile); err != nil {
			log.Fatalf("settings: %v", err)
		}
	}

	catalogRepo := repo.NewCatalogRepo(repo.SeedProducts())
	catalogSvc := &service.CatalogService{Repo: catalogRepo, Search: openSearch(baseCtx, cfg.ESURL, cfg.ESUser, cfg.ESPassword, cfg.ESIndex), Events: publisher}
	if err := catalogSvc.Reindex(baseCtx); err != nil {
		logger.Warn("search_reindex_failed", "error", err)
	}

	cartSvc := &service.CartService{Repo: repo.NewCartRepo(), Catalog: catalogRepo, Events: publisher}
	orderSvc := &service.OrderService{Repo: &repo.OrderRepo{Store: store}, Events: publisher}
	checkoutSvc := service.NewCheckoutService(cartSvc, orderSvc, cfg.CheckoutDelay)
	settingsSvc := service.NewSettingsService(settings)

	adminSvc, err := service.NewAdminService(store, cfg.AdminUsername, cfg.AdminPassword, cfg.JWTAccessSecret, cfg.AdminSessionTTL)
	if err != nil {
		log.Fatalf("admin: %v", err)
	}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		ProductHandler:  &httpserver.ProductHTTP{Svc: catalogSvc},
		CartHandler:     &httpserver.CartHTTP{Svc: cartSvc},
		CheckoutHandler: &httpserver.CheckoutHTTP{Svc: checkoutSvc},
		AdminHandler:    &httpserver.AdminHTTP{Svc: adminSvc},
		OrderHandler:    &httpserver.OrderHTTP{Svc: orderSvc, Settings: settingsSvc},
		SettingsHandler: &httpserver.SettingsHTTP{Svc: settingsSvc},
		AdminGuard:      middleware.NewAdminMiddleware(cfg.JWTAccessSecret, adminSvc),
		CSRFEnabled:     cfg.CSRFEnabled,
		LoginRatePerMin: cfg.LoginRatePerMin,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info("storefront listening", "addr", srv.Addr, "storage", storageScheme(cfg.StorageURL), "events", cfg.EventsDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if err := publisher.Close(); err != nil {
		logger.Warn("events_close_failed", "error", err)
	}
	if err := store.Close(); err != nil {
		logger.Warn("storage_close_failed", "error", err)
	}

	log.Println("storefront stopped")
}

// openSearch uses Elasticsearch when ES_URL is set and reachable, and the
// in-process index otherwise.
func openSearch(ctx context.Context, url, user, password, index string) search.Index {
	l := logging.FromContext(ctx)
	if url == "" {
		return search.NewMemory()
	}

	es, err := search.NewElastic(search.ElasticConfig{URL: url, Username: user, Password: password, Index: index})
	if err == nil {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = es.Ping(pingCtx)
		cancel()
	}
	if err != nil {
		l.Warn("elasticsearch_unavailable", "reason", "falling back to in-memory search", "error", err)
		return search.NewMemory()
	}
	return es
}

func storageScheme(url string) string {
	if scheme, _, ok := strings.Cut(url, "://"); ok {
		return scheme
	}
	return "memory"
}
