package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/jwib1009/family-activity-demo/internal/anthropic"
	"github.com/jwib1009/family-activity-demo/internal/config"
	"github.com/jwib1009/family-activity-demo/internal/handler"
	middlewarepkg "github.com/jwib1009/family-activity-demo/internal/middleware"
	"github.com/jwib1009/family-activity-demo/internal/router"
	"github.com/jwib1009/family-activity-demo/internal/service"
	"github.com/jwib1009/family-activity-demo/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if !cfg.APIKeyConfigured() {
		logger.Warn("ANTHROPIC_API_KEY not configured; search requests will fail",
			zap.String("hint", "get a key from https://console.anthropic.com/"))
	}

	completer := anthropic.NewClient(nil, anthropic.Options{
		BaseURL:    cfg.AnthropicBaseURL,
		APIKey:     cfg.AnthropicAPIKey,
		Model:      cfg.AnthropicModel,
		MaxTokens:  cfg.MaxTokens,
		Configured: cfg.APIKeyConfigured(),
	})

	recommendations := service.NewRecommendationService(completer, cfg.StrictActivities, logger)
	activitiesHandler := handler.NewActivitiesHandler(recommendations, cfg.Development(), logger)

	apiClient := ui.NewAPIClient(&http.Client{}, cfg.APIBaseURL)
	uiHandler := ui.NewHandler(apiClient, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(logger))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
	}))

	router.Register(e, router.Handlers{
		Activities: activitiesHandler,
		UI:         uiHandler,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Development() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
