package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"smarthome-backend/internal/api"
	"smarthome-backend/internal/db"
	"smarthome-backend/internal/ingest"
	"smarthome-backend/internal/metrics"
	"smarthome-backend/internal/mw"
	"smarthome-backend/internal/service"
	"smarthome-backend/internal/store"
	"smarthome-backend/internal/tsdb"
)

const (
	janitorInterval = time.Minute
	visitorIdle     = 10 * time.Minute
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the optional MQTT ingest",
	RunE: func(_ *cobra.Command, _ []string) error {
		return serve()
	},
}

func serve() error {
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("database initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.SeedCatalog(ctx, gormDB, &cfg.Catalog); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	repos := store.NewGormRepositories(gormDB)
	m := metrics.New()

	var sink service.ReadingSink
	if cfg.Influx.Enabled {
		w, err := tsdb.Connect(cfg.Influx)
		if err != nil {
			return err
		}
		defer w.Close()
		sink = w
		log.Info().Str("url", cfg.Influx.URL).Str("bucket", cfg.Influx.Bucket).Msg("influxdb mirror enabled")
	}

	svc := service.New(repos, sink, m)

	limiter := mw.NewIPRateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)
	go limiter.RunJanitor(ctx, janitorInterval, visitorIdle)

	if cfg.MQTT.Enabled {
		sub, err := ingest.NewSubscriber(cfg.MQTT, svc.Readings, m)
		if err != nil {
			return err
		}
		if err := sub.Start(ctx); err != nil {
			return err
		}
		defer sub.Close()
	}

	router := api.NewRouter(svc, api.Options{
		RateLimiter: limiter,
		Cache:       mw.NewCacheStore(cfg.Server.CacheTTL),
		CacheTTL:    cfg.Server.CacheTTL,
		Metrics:     m,
		Health:      pinger(gormDB),
	})
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received, stopping services")
	case err := <-serveErr:
		return fmt.Errorf("HTTP server: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	log.Info().Msg("server gracefully stopped")
	return nil
}

func pinger(gormDB *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
