package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpapi "weather-lookup/internal/api/http"
	"weather-lookup/internal/config"
	"weather-lookup/internal/metrics"
	"weather-lookup/internal/prefs"
	"weather-lookup/internal/scheduler"
	"weather-lookup/internal/session"
	"weather-lookup/internal/weather"
	"weather-lookup/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	mc := metrics.NewCollector("weather_lookup")

	// Provider with resilience (backoff + circuit breaker), throttled
	// toward the upstream quota.
	var provider weather.Provider = providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey, mc)
	provider = providers.NewRateLimitedProvider(provider, cfg.ProviderRPS, cfg.ProviderBurst)

	// Core service orchestrating fetch, aggregation and reconciliation.
	service := weather.NewService(provider)

	// File-persisted preferences and the in-memory session state.
	prefStore, err := prefs.NewStore(cfg.PrefsPath)
	if err != nil {
		log.Fatalf("failed to load preferences: %v", err)
	}
	state := session.New()

	// Scheduler that keeps the active location fresh.
	sched := scheduler.New(service, state, cfg.RefreshInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-lookup",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-lookup",
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API routes.
	httpapi.RegisterRoutes(app, service, prefStore, state)

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
