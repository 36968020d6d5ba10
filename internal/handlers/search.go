package handlers

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/yourorg/safiri/internal/enrich"
	"github.com/yourorg/safiri/internal/models"
	"github.com/yourorg/safiri/internal/validation"
)

// Synthesizer genera las ofertas de viaje para un par de nombres
type Synthesizer interface {
	Synthesize(origin, destination string) []models.Route
}

// RouteEnricher mejora rutas con datos externos, retornando baseline ante error
type RouteEnricher interface {
	TryEnrich(ctx context.Context, origin, destination string, baseline []models.Route) ([]models.Route, error)
}

// SearchHandler atiende la búsqueda de rutas
type SearchHandler struct {
	engine   Synthesizer
	enricher RouteEnricher
}

// NewSearchHandler crea el handler. enricher puede ser nil.
func NewSearchHandler(engine Synthesizer, enricher RouteEnricher) *SearchHandler {
	return &SearchHandler{engine: engine, enricher: enricher}
}

// SearchGet busca rutas
// GET /api/routes/search?origin=Dar%20es%20Salaam&destination=Mbeya&enrich=true
func (h *SearchHandler) SearchGet(c *fiber.Ctx) error {
	return h.respond(c, c.Query("origin"), c.Query("destination"), c.QueryBool("enrich", false))
}

// SearchPost busca rutas
// POST /api/routes/search  {"origin": "...", "destination": "...", "enrich": false}
func (h *SearchHandler) SearchPost(c *fiber.Ctx) error {
	var req models.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	return h.respond(c, req.Origin, req.Destination, req.Enrich)
}

// Enrich expone el enriquecimiento directamente sobre rutas del cliente.
// Sin rutas en el cuerpo, se enriquecen las calculadas por el motor.
// POST /api/routes/enrich  {"origin": "...", "destination": "...", "routes": [...]}
func (h *SearchHandler) Enrich(c *fiber.Ctx) error {
	var req models.EnrichRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	if err := validateEndpoints(req.Origin, req.Destination); err != nil {
		return badParams(c, err)
	}

	baseline := req.Routes
	if len(baseline) == 0 {
		baseline = h.engine.Synthesize(req.Origin, req.Destination)
	}

	routes, enriched := h.tryEnrich(c.UserContext(), req.Origin, req.Destination, baseline)

	return c.JSON(models.SearchResponse{
		SearchID:    uuid.NewString(),
		Origin:      req.Origin,
		Destination: req.Destination,
		Count:       len(routes),
		Enriched:    enriched,
		Routes:      routes,
	})
}

// Search ejecuta la búsqueda completa: síntesis y, opcionalmente, enriquecimiento
func (h *SearchHandler) Search(ctx context.Context, origin, destination string, withEnrichment bool) models.SearchResponse {
	searchID := uuid.NewString()
	routes := h.engine.Synthesize(origin, destination)

	enriched := false
	if withEnrichment {
		routes, enriched = h.tryEnrich(ctx, origin, destination, routes)
	}

	log.Printf("🔍 [SEARCH] %s %s -> %s: %d rutas (enriched=%t)", searchID[:8], origin, destination, len(routes), enriched)

	return models.SearchResponse{
		SearchID:    searchID,
		Origin:      origin,
		Destination: destination,
		Count:       len(routes),
		Enriched:    enriched,
		Routes:      routes,
	}
}

func (h *SearchHandler) respond(c *fiber.Ctx, origin, destination string, withEnrichment bool) error {
	if err := validateEndpoints(origin, destination); err != nil {
		return badParams(c, err)
	}
	return c.JSON(h.Search(c.UserContext(), origin, destination, withEnrichment))
}

func (h *SearchHandler) tryEnrich(ctx context.Context, origin, destination string, baseline []models.Route) ([]models.Route, bool) {
	if h.enricher == nil {
		return baseline, false
	}

	routes, err := h.enricher.TryEnrich(ctx, origin, destination, baseline)
	if err != nil {
		if !errors.Is(err, enrich.ErrDisabled) && !errors.Is(err, enrich.ErrNoBaseline) {
			log.Printf("⚠️  [SEARCH] Enriquecimiento no disponible, usando rutas calculadas: %v", err)
		}
		return routes, false
	}
	return routes, true
}

// validateEndpoints valida forma de origen y destino; la existencia la decide el motor
func validateEndpoints(origin, destination string) error {
	if err := validation.ValidateLocationName("origin", origin); err != nil {
		return err
	}
	return validation.ValidateLocationName("destination", destination)
}

func badParams(c *fiber.Ctx, err error) error {
	msg := "Origin and destination are required"
	var pe *validation.ParamError
	if errors.As(err, &pe) && !strings.Contains(pe.Message, "requerido") {
		msg = "Invalid " + pe.Field
	}
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error:   msg,
		Message: err.Error(),
	})
}
