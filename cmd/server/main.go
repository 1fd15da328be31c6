package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	fiberRecover "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Anikethb04/Project-IMDB/internal/config"
	"github.com/Anikethb04/Project-IMDB/internal/database"
	"github.com/Anikethb04/Project-IMDB/internal/handler"
	"github.com/Anikethb04/Project-IMDB/internal/logging"
	"github.com/Anikethb04/Project-IMDB/internal/middleware"
	"github.com/Anikethb04/Project-IMDB/internal/service"
	"github.com/Anikethb04/Project-IMDB/internal/tmdb"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log, logCloser := logging.New(cfg.Log)
	defer logCloser.Close()
	slog.SetDefault(log)

	// Redis is optional; without it the rate limiter passes everything through.
	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err = database.NewRedis(pingCtx, cfg.Redis)
		cancel()
		if err != nil {
			slog.Warn("rate limiting disabled", "error", err)
			rdb = nil
		}
	}

	client := tmdb.NewClient(tmdb.Options{
		APIKey:        cfg.TMDB.APIKey,
		BaseURL:       cfg.TMDB.BaseURL,
		Timeout:       cfg.TMDB.Timeout,
		RetryAttempts: cfg.TMDB.RetryAttempts,
		RatePerSecond: cfg.TMDB.RatePerSecond,
	})
	catalogHandler := handler.NewCatalogHandler(service.NewCatalogService(client))

	swaggerYAML, err := os.ReadFile("docs/swagger.yaml")
	if err != nil {
		slog.Warn("swagger document not found, swagger UI will be unavailable", "error", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "tmdb-browser",
		ServerHeader: "tmdb-browser",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			return c.Status(code).JSON(handler.ErrorResponse{Error: err.Error()})
		},
	})

	app.Use(fiberRecover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(middleware.NoCache())

	rateLimiter := middleware.NewRateLimiter(rdb, cfg.RateLimit.Max, cfg.RateLimit.WindowSeconds)
	app.Use("/api", rateLimiter.Handler())

	if swaggerYAML != nil {
		handler.RegisterSwagger(app, swaggerYAML)
	}
	catalogHandler.Register(app)

	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		index := filepath.Join(cfg.StaticDir, "index.html")
		app.Get("/*", static.New(cfg.StaticDir, static.Config{
			NotFoundHandler: func(c fiber.Ctx) error {
				return c.SendFile(index)
			},
		}))
	} else {
		slog.Warn("static directory not found, front end will not be served", "dir", cfg.StaticDir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("tmdb-browser starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down tmdb-browser...")

	if err := app.Shutdown(); err != nil {
		slog.Error("error shutting down HTTP server", "error", err)
	}
	slog.Info("HTTP server stopped")

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			slog.Error("error closing Redis connection", "error", err)
		} else {
			slog.Info("Redis connection closed")
		}
	}

	slog.Info("tmdb-browser shutdown complete")
}
