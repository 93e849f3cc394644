package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/nhlstats/player-comparison-service/internal/config"
	"github.com/nhlstats/player-comparison-service/internal/handler"
	"github.com/nhlstats/player-comparison-service/internal/logger"
	"github.com/nhlstats/player-comparison-service/internal/nhl"
	"github.com/nhlstats/player-comparison-service/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	// Load application config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	client := nhl.NewClient(nhl.Config{
		BaseURL:           cfg.NHL.BaseURL,
		Timeout:           cfg.NHL.Timeout,
		UserAgent:         cfg.NHL.UserAgent,
		RequestsPerSecond: cfg.NHL.RequestsPerSecond,
		Burst:             cfg.NHL.Burst,
	}, appLogger)

	players := service.NewPlayerService(client, appLogger)
	comparisons := service.NewComparisonService(appLogger)
	charts := service.NewChartService(appLogger)

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestID(), handler.RequestLogger(appLogger), handler.Metrics())
	handler.Register(r, client, players, comparisons, charts, handler.Defaults{
		Season:   cfg.NHL.DefaultSeason,
		GameType: cfg.NHL.DefaultGameType,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info().Str("addr", server.Addr).Msg("🚀 Service started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("failed to shutdown server")
	}

	appLogger.Info().Msg("server stopped")
}
