package handlers

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/safiri/internal/cache"
	"github.com/yourorg/safiri/internal/middleware"
)

// MetricsHandler maneja métricas del proceso
type MetricsHandler struct {
	startTime time.Time
}

// NewMetricsHandler crea un nuevo handler de métricas
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{startTime: time.Now()}
}

// SystemMetrics representa las métricas del proceso
type SystemMetrics struct {
	UptimeSeconds   int64   `json:"uptimeSeconds"`
	MemoryMB        float64 `json:"memoryMB"`
	Goroutines      int     `json:"goroutines"`
	Searches        int64   `json:"searches"`
	Enrichments     int64   `json:"enrichments"`
	SearchesPerMin  float64 `json:"searchesPerMin"`
	ScrapeCacheSize int     `json:"scrapeCacheSize"`
}

// GetMetrics obtiene las métricas actuales
// GET /api/metrics
func (h *MetricsHandler) GetMetrics(c *fiber.Ctx) error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	searches, enrichments := middleware.Counts()
	uptime := time.Since(h.startTime)

	metrics := SystemMetrics{
		UptimeSeconds: int64(uptime.Seconds()),
		MemoryMB:      float64(m.Alloc) / 1024 / 1024,
		Goroutines:    runtime.NumGoroutine(),
		Searches:      searches,
		Enrichments:   enrichments,
	}
	if minutes := uptime.Minutes(); minutes > 0 {
		metrics.SearchesPerMin = float64(searches) / minutes
	}
	if cache.ScrapeCache != nil {
		metrics.ScrapeCacheSize = cache.ScrapeCache.Count()
	}

	return c.JSON(metrics)
}
