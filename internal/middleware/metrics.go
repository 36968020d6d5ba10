package middleware

import (
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yourorg/safiri/internal/debug"
)

var (
	searchCount     atomic.Int64
	enrichmentCount atomic.Int64
)

// Counts retorna búsquedas y enriquecimientos atendidos desde el arranque
func Counts() (searches, enrichments int64) {
	return searchCount.Load(), enrichmentCount.Load()
}

// MetricsMiddleware cuenta búsquedas y enriquecimientos exitosos
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if c.Response().StatusCode() >= 400 {
			return err
		}

		path := c.Path()
		switch {
		case strings.HasPrefix(path, "/api/routes/search"), strings.HasPrefix(path, "/api/routes/shared/"):
			searchCount.Add(1)
			if c.Query("enrich") == "true" || strings.Contains(string(c.Body()), `"enrich":true`) {
				enrichmentCount.Add(1)
			}
		case strings.HasPrefix(path, "/api/routes/enrich"):
			enrichmentCount.Add(1)
		}

		return err
	}
}

// PeriodicMetricsCollector envía métricas periódicamente al dashboard
func PeriodicMetricsCollector(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if !debug.IsEnabled() {
			continue
		}

		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		searches, enrichments := Counts()
		debug.UpdateMetrics(float64(m.Alloc)/1024/1024, runtime.NumGoroutine(), int(searches), int(enrichments))
	}
}
