package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosseh91/listinghub/internal/config"
	"github.com/Dosseh91/listinghub/internal/logging"
	"github.com/Dosseh91/listinghub/internal/monitoring"
	"github.com/Dosseh91/listinghub/internal/server"
	"github.com/Dosseh91/listinghub/internal/session"
	"github.com/Dosseh91/listinghub/internal/store"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration first
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logging
	logging.Setup(&cfg.Logging, cfg.Server.Env)

	log.Info().
		Str("env", cfg.Server.Env).
		Str("name", cfg.Server.Name).
		Msg("Starting listinghub API server")

	// Initialize the in-memory data store with demo fixtures
	st := store.New()
	st.Seed()

	// Pick the session backend: redis keeps the signed-in user across
	// restarts, memory is for development runs without redis.
	var sessions session.Store
	if cfg.Session.RedisURL != "" {
		redisSessions, err := session.NewRedisStore(cfg.Session.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect session store")
		}
		defer redisSessions.Close()
		sessions = redisSessions
		log.Info().Msg("Session store: redis")
	} else {
		sessions = session.NewMemoryStore()
		log.Info().Msg("Session store: in-memory")
	}

	// Initialize Prometheus metrics
	monitoring.Init()

	// Start metrics server if enabled
	if cfg.Monitoring.PrometheusEnabled {
		go startMetricsServer(cfg.Monitoring.PrometheusPort)
	}

	// Create and start server
	srv := server.NewAPIServer(cfg, st, sessions)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      srv.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Int("port", cfg.Server.Port).
			Msg("API server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().
		Str("signal", sig.String()).
		Msg("Shutdown signal received, gracefully shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}

func startMetricsServer(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", monitoring.Handler())

	metricsServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info().
		Int("port", port).
		Msg("Prometheus metrics server listening")

	if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("Metrics server error")
	}
}
