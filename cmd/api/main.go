package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/angelmondragon/skinshop-backend/api/routes"
	"github.com/angelmondragon/skinshop-backend/internal/admin"
	"github.com/angelmondragon/skinshop-backend/internal/browse"
	"github.com/angelmondragon/skinshop-backend/internal/cart"
	"github.com/angelmondragon/skinshop-backend/internal/catalog"
	"github.com/angelmondragon/skinshop-backend/internal/checkout"
	"github.com/angelmondragon/skinshop-backend/internal/notifications"
	"github.com/angelmondragon/skinshop-backend/pkg/config"
	"github.com/angelmondragon/skinshop-backend/pkg/logger"
	"github.com/angelmondragon/skinshop-backend/pkg/metrics"
)

const serviceName = "skinshop"

func main() {
	logg := logger.New(logger.Options{ServiceName: serviceName})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Format:      cfg.App.LogFormat,
	})

	cat, err := catalog.Load(cfg.Catalog.SeedPath)
	if err != nil {
		logg.Error(context.Background(), "failed to load catalog", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	shopMetrics := metrics.NewShopMetrics(registry)

	feed, err := notifications.NewFeed(cfg.Notifications.FeedCapacity)
	if err != nil {
		logg.Error(context.Background(), "failed to create notification feed", err)
		os.Exit(1)
	}
	notifier := notifications.Fanout{feed, notifications.LogNotifier{Logger: logg}}

	shopCart, err := cart.New(cart.Params{Notifier: notifier, Metrics: shopMetrics, Logger: logg})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart", err)
		os.Exit(1)
	}

	views, err := browse.NewService(cfg.Browse.CacheSize, cfg.Browse.CacheTTL, shopMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create browse service", err)
		os.Exit(1)
	}

	checkoutService, err := checkout.NewService(checkout.Params{
		Notifier: notifier,
		Delay:    cfg.Checkout.ProcessingDelay,
		Metrics:  shopMetrics,
		Logger:   logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	var workspace *admin.Workspace
	if cfg.Admin.Enabled {
		workspace, err = admin.NewWorkspace(cat, notifier, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to create admin workspace", err)
			os.Exit(1)
		}
	}

	deps := routes.Deps{
		Config:        cfg,
		Logger:        logg,
		Catalog:       cat,
		Cart:          shopCart,
		Views:         views,
		Checkout:      checkoutService,
		Notifications: feed,
		Gatherer:      registry,
	}
	if workspace != nil {
		deps.Admin = workspace
	}
	handler, err := routes.NewRouter(deps)
	if err != nil {
		logg.Error(context.Background(), "failed to build router", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":   cfg.App.Env,
		"addr":  addr,
		"skins": cat.Len(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
