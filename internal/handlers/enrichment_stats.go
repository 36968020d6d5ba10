package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yourorg/safiri/internal/models"
)

// GetEnrichmentStats retorna el resumen de intentos de enriquecimiento
// GET /api/stats/enrichment?hours=24&recent=10
func GetEnrichmentStats(c *fiber.Ctx) error {
	store := getEnrichmentStore()
	if store == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse{
			Error:   "Database not configured",
			Message: "enrichment run log requires DB_NAME",
		})
	}

	hours := c.QueryInt("hours", 24)
	if hours <= 0 || hours > 24*90 {
		hours = 24
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	summaries, err := store.Summary(ctx, time.Duration(hours)*time.Hour)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:   "Failed to load enrichment stats",
			Message: err.Error(),
		})
	}

	resp := fiber.Map{
		"hours":     hours,
		"providers": summaries,
	}

	if recent := c.QueryInt("recent", 0); recent > 0 {
		runs, err := store.RecentRuns(ctx, recent)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
				Error:   "Failed to load recent runs",
				Message: err.Error(),
			})
		}
		resp["recent"] = runs
	}

	return c.JSON(resp)
}
