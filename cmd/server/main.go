package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/neotechlabs/storefront/internal"
	"github.com/neotechlabs/storefront/internal/catalog"
	"github.com/neotechlabs/storefront/internal/checkout"
	"github.com/neotechlabs/storefront/internal/handler"
	"github.com/neotechlabs/storefront/internal/handler/storefront"
	"github.com/neotechlabs/storefront/internal/middleware"
	"github.com/neotechlabs/storefront/internal/router"
	"github.com/neotechlabs/storefront/internal/routes"
	"github.com/neotechlabs/storefront/internal/storage"
	"github.com/neotechlabs/storefront/internal/store"
	"github.com/neotechlabs/storefront/internal/tax"
	"github.com/neotechlabs/storefront/internal/telemetry"
)

// sessionSlotKey is the durable slot the shopper session persists
// under.
const sessionSlotKey = "neotech-user"

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Business metrics
	telemetry.Init(cfg.MetricsNamespace)

	// Durable session slot
	slot, err := storage.NewFileSlot(cfg.SessionPath, sessionSlotKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session storage: %w", err)
	}

	// Stores
	cart := store.NewCartStore()
	sessions := store.NewSessionStore(slot, cfg.LoginDelay, logger)

	// Product catalog
	client := catalog.NewClient(cfg.CatalogBaseURL)
	loader := catalog.NewLoader(client, logger)

	// Checkout
	validator := checkout.NewValidator()
	taxCalculator := tax.NewPercentageCalculator(cfg.TaxRate)
	navigator := checkout.NavigatorFunc(func() {
		logger.Info("confirmation expired, shopper returns to catalog")
	})
	orchestrator := checkout.NewOrchestrator(cart, taxCalculator, navigator, cfg.RedirectDelay, logger)
	defer orchestrator.Cancel()

	// Load templates
	logger.Info("Loading templates...")
	renderer, err := handler.NewRenderer(cfg.TemplatesDir)
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	logger.Info("Templates loaded successfully")

	// Route dependencies
	storefrontDeps := routes.StorefrontDeps{
		HomeHandler:     storefront.NewHomeHandler(loader, client, cart, renderer),
		ProductHandler:  storefront.NewProductHandler(client, cart, renderer),
		CartHandler:     storefront.NewCartHandler(cart, client, renderer),
		CheckoutHandler: storefront.NewCheckoutHandler(cart, sessions, validator, orchestrator, renderer),
		AuthHandler:     storefront.NewAuthHandler(sessions),
	}

	// HTTP metrics
	metrics := middleware.NewMetrics(cfg.MetricsNamespace)

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.WithSession(sessions),
		middleware.WithRequestLogger(logger),
	)

	// Static files
	r.Static("/static/", "./web/static")

	// Metrics endpoint (protect via firewall in production)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.RegisterStorefrontRoutes(r, storefrontDeps)

	// Serve until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting storefront server", "address", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
