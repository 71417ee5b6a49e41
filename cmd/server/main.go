package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/adisurya/fintrack/internal/auth"
	"github.com/adisurya/fintrack/internal/config"
	"github.com/adisurya/fintrack/internal/metrics"
	"github.com/adisurya/fintrack/internal/middleware"
	"github.com/adisurya/fintrack/internal/server"
	"github.com/adisurya/fintrack/internal/service"
	"github.com/adisurya/fintrack/internal/storage/sqlite"
	"github.com/adisurya/fintrack/pkg/logging"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// Setup structured logging
	logging.Setup()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	// Auth gate: bcrypt passwords, JWT sessions
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)
	authenticator := auth.NewPasswordAuthenticator(store)
	authSvc := service.NewAuthService(authenticator, jwtManager, store, slog.Default())
	financeSvc := service.NewFinanceService(store)

	promMetrics := metrics.New(prometheus.DefaultRegisterer)

	srv := server.New(financeSvc, authSvc, jwtManager, metrics.Handler(prometheus.DefaultGatherer))
	handler := srv.Handler(
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS,
		promMetrics.Middleware,
	)

	httpServer := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16, // 64KB
	}

	// Graceful shutdown: serve until interrupted, then drain
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
