// Package main is the entry point for the application.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"counpaign/internal/config"
	apperrors "counpaign/internal/errors"
	"counpaign/internal/handlers"
	"counpaign/internal/logging"
	"counpaign/internal/metrics"
	"counpaign/internal/middleware"
	"counpaign/internal/repositories"
	"counpaign/internal/repositories/cache"
	"counpaign/internal/routes"
	"counpaign/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// main initializes and starts the HTTP server.
// It performs the following setup:
// - Loads configuration
// - Initializes database connection
// - Sets up dependency injection
// - Configures routes
// - Starts the HTTP server
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load configuration")
	}
	log := logging.Setup(cfg.LogLevel, cfg.IsProduction())

	db, err := repositories.InitDB(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("initialize database")
	}
	defer func() {
		if err := repositories.Close(db); err != nil {
			log.WithError(err).Warn("close database connection")
		}
	}()
	go logPoolStats(db)

	health := map[string]handlers.Pinger{"postgres": handlers.PingFunc(func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})}

	// Limiter counters live in Redis when configured so every instance
	// shares them.
	var storage fiber.Storage
	if cfg.Redis.Addr != "" {
		rs := cache.NewRedisStorage(cache.NewRedisClient(&cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), "counpaign:limiter:")
		defer rs.Close()
		health["redis"] = handlers.PingFunc(rs.HealthCheck)
		storage = rs
		log.WithField("addr", cfg.Redis.Addr).Info("rate limiter using Redis storage")
	}

	app := fiber.New(fiber.Config{
		AppName:      "Counpaign API",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))
	app.Use(logger.New(logger.Config{
		Format: "${status} - ${latency} ${method} ${path}\n",
		Output: logging.Writer(),
	}))
	app.Use(metrics.Middleware())
	app.Use(middleware.Timeout(cfg.RequestTimeout))

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	apiLimiter, authLimiter := newLimiters(cfg.Limits, storage)
	app.Use("/api", apiLimiter)

	tokens := utils.TokenConfig{Secret: cfg.JWT.Secret, TTL: cfg.JWT.TTL, Issuer: cfg.JWT.Issuer}
	services := routes.NewServices(repositories.NewStore(db), tokens, metrics.Prometheus{})
	routes.SetupRoutes(app, services, routes.Options{
		AuthLimiter: authLimiter,
		Health:      health,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("shutdown")
		}
	}()

	log.WithField("port", cfg.Port).Info("server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Error("server stopped")
	}
}

// newLimiters returns the global /api limiter and the stricter auth limiter.
// Both may share one storage, so each namespaces its counter keys.
func newLimiters(limits config.RateLimitConfig, storage fiber.Storage) (api, auth fiber.Handler) {
	api = newLimiter("api:", limits.Max, limits.Window, storage)
	auth = newLimiter("auth:", limits.AuthMax, limits.AuthWindow, storage)
	return api, auth
}

func newLimiter(prefix string, max int, window time.Duration, storage fiber.Storage) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		Storage:    storage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return prefix + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
				"code":  "RATE_LIMITED",
			})
		},
	})
}

// errorHandler renders errors that escape the handlers, including fiber's
// own 404 and 405.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := apperrors.CodeInternal
		switch fe.Code {
		case fiber.StatusNotFound:
			code = apperrors.CodeNotFound
		case fiber.StatusBadRequest:
			code = apperrors.CodeValidation
		}
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message, "code": code})
	}
	return utils.Error(c, err)
}

// logPoolStats periodically reports connection pool usage.
func logPoolStats(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		stats := sqlDB.Stats()
		logging.L().WithFields(logrus.Fields{
			"open":          stats.OpenConnections,
			"idle":          stats.Idle,
			"in_use":        stats.InUse,
			"wait_count":    stats.WaitCount,
			"wait_duration": stats.WaitDuration,
		}).Debug("db pool stats")
	}
}
