package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/gridwatch/nut-exporter/internal/collector"
	"github.com/gridwatch/nut-exporter/internal/config"
	"github.com/gridwatch/nut-exporter/internal/nut"
	"github.com/gridwatch/nut-exporter/internal/server"
	"github.com/gridwatch/nut-exporter/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("NUT exporter starting", zap.String("version", version.Short()))

	// Load configuration; missing required variables abort before binding.
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	source := nut.NewClient(cfg.Host, cfg.NUTPort)

	// Explicit registry instead of the package-level default.
	registry := prometheus.NewRegistry()
	registry.MustRegister(collector.New(source, cfg.UPS, logger.Named("collector")))

	srv := server.New(cfg.ListenAddr(), registry, logger)

	// Start server in background
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	logger.Info("NUT exporter ready",
		zap.String("addr", cfg.ListenAddr()),
		zap.String("nut_host", cfg.Host),
		zap.Int("nut_port", cfg.NUTPort),
		zap.String("ups", cfg.UPS),
	)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("NUT exporter stopped")
}
