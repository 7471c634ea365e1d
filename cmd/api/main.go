package main

// @title Touchpoint API
// @version 1.0
// @description Touch-sequence scheduling and cycle-lifecycle engine for relationship nurturing.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/jordanlanch/touchpoint/config"
	"github.com/jordanlanch/touchpoint/pkg/container"
	custommiddleware "github.com/jordanlanch/touchpoint/pkg/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Build the dependency container
	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize application: %v", err)
	}
	defer c.Close()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(c.Metrics.Middleware())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"X-Actor-ID",
		},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(ec echo.Context) error {
		return ec.JSON(http.StatusOK, map[string]any{
			"name":        "Touchpoint API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(ec echo.Context) error {
		ctx, cancel := context.WithTimeout(ec.Request().Context(), 2*time.Second)
		defer cancel()

		if err := c.DB.Ping(ctx); err != nil {
			return ec.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := c.Cache.Get(ctx, "health_check"); err != nil && err.Error() != "redis: nil" {
			return ec.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return ec.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Swagger documentation (public)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 routes group with versioning middleware
	v1 := e.Group("/api/v1")
	v1.Use(custommiddleware.APIVersionMiddleware(custommiddleware.CurrentAPIVersion))

	v1.GET("/version", func(ec echo.Context) error {
		return ec.JSON(http.StatusOK, custommiddleware.VersionInfo(custommiddleware.CurrentAPIVersion))
	})

	v1.GET("/ping", func(ec echo.Context) error {
		return ec.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Preset catalog
	presetsGroup := v1.Group("/presets")
	{
		presetsGroup.POST("", c.PresetHandler.Create)
		presetsGroup.GET("", c.PresetHandler.List)
		presetsGroup.GET("/:id", c.PresetHandler.Get)
		presetsGroup.PUT("/:id", c.PresetHandler.Update)
		presetsGroup.DELETE("/:id", c.PresetHandler.Delete)
	}

	// Subscription lifecycle
	subsGroup := v1.Group("/subscriptions")
	{
		subsGroup.POST("", c.SubscriptionHandler.Activate)
		subsGroup.GET("", c.SubscriptionHandler.List)
		subsGroup.GET("/:id", c.SubscriptionHandler.Get)
		subsGroup.POST("/:id/pause", c.SubscriptionHandler.Pause)
		subsGroup.POST("/:id/resume", c.SubscriptionHandler.Resume)
		subsGroup.POST("/:id/cancel", c.SubscriptionHandler.Cancel)
		subsGroup.POST("/:id/complete", c.SubscriptionHandler.Complete)
		subsGroup.POST("/:id/repeat-cycle", c.SubscriptionHandler.RepeatCycle)
		subsGroup.GET("/:id/progress", c.SubscriptionHandler.Progress)
		subsGroup.GET("/:id/touches", c.TouchHandler.ListBySubscription)
		subsGroup.POST("/:id/touches", c.TouchHandler.Add)
	}

	// Touch state machine
	touchesGroup := v1.Group("/touches")
	{
		touchesGroup.GET("/due", c.TouchHandler.ListDue)
		touchesGroup.GET("/:id", c.TouchHandler.Get)
		touchesGroup.PUT("/:id", c.TouchHandler.Edit)
		touchesGroup.POST("/:id/complete", c.TouchHandler.Complete)
		touchesGroup.POST("/:id/skip", c.TouchHandler.Skip)
		touchesGroup.POST("/:id/snooze", c.TouchHandler.Snooze)
		touchesGroup.POST("/:id/reschedule", c.TouchHandler.Reschedule)
		touchesGroup.POST("/:id/reassign", c.TouchHandler.Reassign)
	}

	// Touch history exports
	exportsGroup := v1.Group("/exports")
	{
		exportsGroup.POST("", c.ExportHandler.Create)
		exportsGroup.GET("/download", c.ExportHandler.Download)
	}

	// Background jobs
	if c.CronManager != nil {
		if err := c.CronManager.SetupJobs(); err != nil {
			log.Fatalf("❌ Failed to set up cron jobs: %v", err)
		}
		c.CronManager.Start()
		log.Printf("⏰ Cron jobs: auto-resume (%s), overdue digest (%s), backup (%s)",
			cfg.AutoResumeSchedule, cfg.OverdueDigestSchedule, cfg.BackupSchedule)
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 Touchpoint API starting on %s", address)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	if c.CronManager != nil {
		c.CronManager.Stop()
		log.Println("✅ Cron jobs stopped")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
