package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/almagest/almagest/internal/api"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	addr := os.Getenv("ALMAGEST_HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	rateCfg := loadRateConfig(logger)
	srv := api.NewServer(addr, logger, rateCfg)

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", addr, "rate_limit_enabled", rateCfg.Enabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server listen error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.HTTPServer().Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func loadRateConfig(logger *slog.Logger) api.RateConfig {
	cfg := api.RateConfig{
		Enabled: true,
		RPS:     10,
		Burst:   20,
	}
	if v := os.Getenv("ALMAGEST_RATE_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid ALMAGEST_RATE_ENABLED, keeping default", "value", v)
		} else {
			cfg.Enabled = enabled
		}
	}
	if v := os.Getenv("ALMAGEST_RATE_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps <= 0 {
			logger.Warn("invalid ALMAGEST_RATE_RPS, keeping default", "value", v)
		} else {
			cfg.RPS = rps
		}
	}
	if v := os.Getenv("ALMAGEST_RATE_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst <= 0 {
			logger.Warn("invalid ALMAGEST_RATE_BURST, keeping default", "value", v)
		} else {
			cfg.Burst = burst
		}
	}
	return cfg
}
