package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/velora-shop/storefront-backend/api/routes"
	"github.com/velora-shop/storefront-backend/internal/cart"
	"github.com/velora-shop/storefront-backend/internal/catalog"
	"github.com/velora-shop/storefront-backend/pkg/config"
	"github.com/velora-shop/storefront-backend/pkg/db"
	"github.com/velora-shop/storefront-backend/pkg/logger"
	"github.com/velora-shop/storefront-backend/pkg/metrics"
	"github.com/velora-shop/storefront-backend/pkg/migrate"
	"github.com/velora-shop/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	var mirror catalog.MirrorSource
	if base := cfg.Mirror.NormalizedBaseURL(); base != "" {
		client, err := catalog.NewMirror(base, catalog.WithTimeout(cfg.Mirror.Timeout))
		if err != nil {
			logg.Error(context.Background(), "failed to configure catalog mirror", err)
			os.Exit(1)
		}
		mirror = client
	} else {
		logg.Warn(context.Background(), "catalog mirror not configured, network fallback disabled")
	}

	resolver, err := catalog.NewResolver(
		catalog.NewRepository(dbClient.DB()),
		mirror,
		logg,
		metrics.NewResolverMetrics(prometheus.DefaultRegisterer),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog resolver", err)
		os.Exit(1)
	}

	sessions, err := cart.NewSessions(redisClient, cfg.Cart, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart sessions", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting storefront server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, resolver, sessions),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "storefront server stopped unexpectedly", err)
		os.Exit(1)
	}
}
