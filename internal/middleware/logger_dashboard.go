package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yourorg/safiri/internal/debug"
)

// DashboardLogger middleware para enviar logs al dashboard en tiempo real
func DashboardLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !debug.IsEnabled() {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		status := c.Response().StatusCode()
		path := c.Path()

		message := fmt.Sprintf("%s %s", c.Method(), path)
		metadata := map[string]interface{}{
			"method":      c.Method(),
			"path":        path,
			"status":      status,
			"duration_ms": duration.Milliseconds(),
			"ip":          c.IP(),
		}

		// El hub decide si hay clientes conectados
		debug.SendLog(logSource(path), logLevel(status), message, metadata)

		return err
	}
}

// logSource agrupa los logs del dashboard por componente
func logSource(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/routes/enrich"), strings.HasPrefix(path, "/api/stats/enrichment"):
		return "enrichment"
	case strings.HasPrefix(path, "/api/routes"):
		return "routing"
	default:
		return "backend"
	}
}

func logLevel(status int) string {
	switch {
	case status >= 500:
		return "error"
	case status >= 400:
		return "warn"
	default:
		return "info"
	}
}
