package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// limiterConfig describe un preset de rate limiting por IP
type limiterConfig struct {
	max     int
	window  time.Duration
	message string
}

// newLimiter crea un limitador de ventana deslizante con respuesta JSON uniforme
func newLimiter(cfg limiterConfig) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        cfg.max,
		Expiration: cfg.window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "rate limit exceeded",
				"message":     cfg.message,
				"retry_after": int(cfg.window.Seconds()),
				"limit":       cfg.max,
			})
		},
		SkipFailedRequests:     false,
		SkipSuccessfulRequests: false,
		LimiterMiddleware:      limiter.SlidingWindow{},
	})
}
