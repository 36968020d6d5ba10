package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yourorg/safiri/internal/cache"
	"github.com/yourorg/safiri/internal/models"
)

// ============================================================================
// CACHE STATISTICS ENDPOINT
// ============================================================================
// Endpoint para monitorear el estado del caché de enriquecimiento
// GET /api/cache/stats

// GetCacheStats retorna estadísticas de todos los cachés activos
func GetCacheStats(c *fiber.Ctx) error {
	stats := cache.GetAllCacheStats()

	var totalItems, totalValid, totalExpired int
	for _, s := range stats {
		totalItems += s.TotalItems
		totalValid += s.ValidItems
		totalExpired += s.ExpiredItems
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"summary": fiber.Map{
			"total_items":   totalItems,
			"valid_items":   totalValid,
			"expired_items": totalExpired,
		},
		"caches": stats,
	})
}

// ClearCache limpia un caché específico o todos
// DELETE /api/cache?type=scrape
// DELETE /api/cache?type=all
func ClearCache(c *fiber.Ctx) error {
	cacheType := c.Query("type", "all")

	var cleared int
	switch cacheType {
	case "scrape":
		if cache.ScrapeCache != nil {
			cache.ScrapeCache.Clear()
			cleared = 1
		}
	case "all":
		cleared = cache.ClearAllCaches()
	default:
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid cache type. Use: scrape or all",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "Cache cleared",
		"type":    cacheType,
		"cleared": cleared,
	})
}
