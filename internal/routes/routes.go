package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/yourorg/safiri/internal/debug"
	"github.com/yourorg/safiri/internal/enrich"
	"github.com/yourorg/safiri/internal/handlers"
	"github.com/yourorg/safiri/internal/locations"
	"github.com/yourorg/safiri/internal/middleware"
	"github.com/yourorg/safiri/internal/rail"
	"github.com/yourorg/safiri/internal/routing"
)

// Deps agrupa los componentes que necesitan los handlers
type Deps struct {
	Engine    *routing.Engine
	Enricher  *enrich.Enricher
	Registry  *locations.Registry
	Corridors *rail.Table
}

func Register(app *fiber.App, deps Deps) {
	// ============================================================================
	// API PÚBLICA
	// ============================================================================
	api := app.Group("/api")

	healthHandler := handlers.NewHealthHandler(deps.Enricher.Provider, deps.Registry.Len())
	catalogHandler := handlers.NewCatalogHandler(deps.Registry, deps.Corridors)
	searchHandler := handlers.NewSearchHandler(deps.Engine, deps.Enricher)
	shareHandler := handlers.NewShareHandler(searchHandler)
	metricsHandler := handlers.NewMetricsHandler()

	// Health check (sin rate limiting)
	api.Get("/health", healthHandler.Health)

	// ============================================================================
	// CATÁLOGO
	// ============================================================================
	api.Get("/locations", middleware.APIRateLimiter(), catalogHandler.ListLocations)
	// GET /api/locations?detailed=true

	api.Get("/corridors", middleware.APIRateLimiter(), catalogHandler.ListCorridors)

	// ============================================================================
	// BÚSQUEDA DE RUTAS
	// ============================================================================
	route := api.Group("/routes")

	// Un solo cupo para todo lo que llama al proveedor externo
	scrapingLimiter := middleware.ScrapingRateLimiter()
	searchLimiter := middleware.APIRateLimiter()

	route.Get("/search", searchLimiter, middleware.WhenEnriching(scrapingLimiter), searchHandler.SearchGet)
	// GET /api/routes/search?origin=X&destination=Y&enrich=true

	route.Post("/search", searchLimiter, middleware.WhenEnriching(scrapingLimiter), searchHandler.SearchPost)
	// POST /api/routes/search  Body: {origin, destination, enrich}

	route.Post("/enrich", scrapingLimiter, searchHandler.Enrich)
	// POST /api/routes/enrich  Body: {origin, destination, routes}
	// Llama al LLM o al navegador headless: muy limitado

	// ────────────────────────────────────────────────────────────────────────
	// BÚSQUEDAS COMPARTIDAS (tokens firmados, sin persistencia)
	// ────────────────────────────────────────────────────────────────────────
	route.Post("/share", middleware.ShareRateLimiter(), shareHandler.CreateShare)
	route.Get("/shared/:token", middleware.APIRateLimiter(), shareHandler.ResolveShare)

	// ============================================================================
	// CACHÉ Y ESTADÍSTICAS
	// ============================================================================
	api.Get("/cache/stats", handlers.GetCacheStats)
	api.Delete("/cache", handlers.ClearCache)
	api.Get("/stats/enrichment", handlers.GetEnrichmentStats)
	api.Get("/metrics", metricsHandler.GetMetrics)

	// ============================================================================
	// DEBUG DASHBOARD WEBSOCKET
	// ============================================================================
	debugApi := api.Group("/debug")
	debugApi.Post("/log", handlers.ReceiveClientLog)
	debugApi.Post("/error", handlers.ReceiveClientError)

	// WebSocket para el dashboard web (siempre disponible)
	app.Use("/ws/debug", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/debug", websocket.New(func(c *websocket.Conn) {
		debug.HandleWebSocketFiber(c)
	}))
}
