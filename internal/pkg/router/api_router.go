package router

import (
	"fmt"
	"time"

	apiv1 "github.com/ManuelReschke/StudioSite/internal/api/v1"
	"github.com/ManuelReschke/StudioSite/app/controllers"
	"github.com/ManuelReschke/StudioSite/internal/pkg/env"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/storage/redis"
)

type ApiRouter struct {
	// storage backs the limiter; nil keeps counters in memory.
	storage fiber.Storage
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", cors.New(), limiter.New(limiter.Config{
		Max:        env.GetEnvInt("API_RATE_LIMIT", 60),
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			ipv4, ipv6 := controllers.GetClientIP(c)
			return fmt.Sprintf("api:%s:%s", ipv4, ipv6)
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":   "rate_limited",
				"message": "too many requests, please slow down",
			})
		},
		Storage: h.storage,
	}))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1")
	apiServer := apiv1.NewAPIServer()
	apiv1.RegisterHandlers(v1, apiServer)
}

// NewApiRouter keeps limiter counters in redis database 2, next to the
// cache (0) and sessions (1).
func NewApiRouter() *ApiRouter {
	return &ApiRouter{
		storage: redis.New(redis.Config{
			Host:     env.GetEnv("CACHE_HOST", "localhost"),
			Port:     env.GetEnvInt("CACHE_PORT", 6379),
			Password: env.GetEnv("CACHE_PASSWORD", ""),
			Database: 2,
		}),
	}
}
