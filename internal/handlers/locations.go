package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/safiri/internal/locations"
	"github.com/yourorg/safiri/internal/rail"
)

// CatalogHandler expone el catálogo de ubicaciones y corredores de tren
type CatalogHandler struct {
	registry  *locations.Registry
	corridors *rail.Table
}

// NewCatalogHandler crea el handler de catálogo
func NewCatalogHandler(registry *locations.Registry, corridors *rail.Table) *CatalogHandler {
	return &CatalogHandler{registry: registry, corridors: corridors}
}

// ListLocations retorna los nombres ordenados
// GET /api/locations
// GET /api/locations?detailed=true  (incluye tipo, región y coordenadas)
func (h *CatalogHandler) ListLocations(c *fiber.Ctx) error {
	if c.QueryBool("detailed", false) {
		all := h.registry.All()
		return c.JSON(fiber.Map{
			"count":     len(all),
			"locations": all,
		})
	}

	names := h.registry.Names()
	return c.JSON(fiber.Map{
		"count":     len(names),
		"locations": names,
	})
}

// ListCorridors retorna la tabla de corredores ferroviarios
// GET /api/corridors
func (h *CatalogHandler) ListCorridors(c *fiber.Ctx) error {
	corridors := h.corridors.Corridors()
	return c.JSON(fiber.Map{
		"count":     len(corridors),
		"corridors": corridors,
	})
}
