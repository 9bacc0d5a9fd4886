package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"homeharbor/internal/config"
	"homeharbor/internal/http/handlers"
	applog "homeharbor/internal/log"
	"homeharbor/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	// The store lives for the process lifetime; a restart starts from the
	// seed again.
	st := store.New()
	if cfg.Seed {
		store.Seed(st)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong. Please try again.",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			// only throttle the API; the SPA assets are free
			return !strings.HasPrefix(c.Path(), "/api")
		},
	}))

	// ---------- API ----------
	deps := handlers.NewDeps(st)
	contactGuard := limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|contact"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.contact.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many messages. Please try again later.",
			})
		},
	})
	deps.Register(app.Group("/api"), contactGuard)

	// Health & static SPA hosting
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	publicDir := cfg.PublicDir
	if abs, err := filepath.Abs(publicDir); err == nil {
		publicDir = abs
	}
	log.Printf("[static] / -> %s", publicDir)
	app.Static("/", publicDir)

	// Unknown API routes get a JSON 404; everything else falls back to the
	// SPA entry point so client-side routing works on deep links.
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found"})
		}
		return c.SendFile(filepath.Join(publicDir, "index.html"), true)
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
