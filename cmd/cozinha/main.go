package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cozinha/internal/config"
	"cozinha/internal/logging"
	"cozinha/internal/mirror"
	"cozinha/internal/monitoring"
	"cozinha/internal/server"
	"cozinha/internal/upstream"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var configFile = flag.String("config", "configs/config.yaml", "Path to configuration file")

func main() {
	flag.Parse()

	logger := logging.GetSugaredLogger()
	defer logger.Sync()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Fatalw("failed to load configuration", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := upstream.NewClient(cfg.Backend.BaseURL, cfg.Backend.Token, cfg.Backend.Timeout, logger)
	if err != nil {
		logger.Fatalw("failed to build backend client", "error", err)
	}

	monitor := monitoring.NewMonitor()
	m := mirror.New(client, cfg.Backend.WSURL, cfg.PollInterval, monitor, logger)
	srv := server.NewServer(m, client, monitor, cfg.JWTSecret, logger)

	go m.Run(ctx)
	go srv.Run(ctx)
	go startMetricsServer(cfg.MetricsAddr, logger)

	api := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: srv.Router(),
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := api.Shutdown(shutdownCtx); err != nil {
			logger.Warnw("API server shutdown error", "error", err)
		}

		cancel() // Stops the mirror and the fanout hub
	}()

	logger.Infow("starting display server", "addr", cfg.ListenAddr, "backend", cfg.Backend.BaseURL)
	if err := api.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatalw("API server error", "error", err)
	}
}

func startMetricsServer(addr string, logger *zap.SugaredLogger) {
	gin.SetMode(gin.ReleaseMode)
	metricsRouter := gin.New()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	metricsServer := &http.Server{
		Addr:    addr,
		Handler: metricsRouter,
	}

	logger.Infow("starting metrics server", "addr", addr)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		logger.Infow("metrics server stopped", "error", err)
	}
}
