package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/safiri/internal/models"
)

// ============================================================================
// RATE LIMITING MIDDLEWARE
// ============================================================================
// Protege el backend contra abuso
// Implementa diferentes niveles según el costo del endpoint

// GlobalRateLimiter - Limitador general para todos los endpoints
// 1000 requests por minuto por IP
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(limiterConfig{
		max:     1000,
		window:  time.Minute,
		message: "Too many requests. Please try again in 1 minute.",
	})
}

// APIRateLimiter - Búsquedas y catálogos
// 200 requests por minuto (la síntesis es barata, sin I/O)
func APIRateLimiter() fiber.Handler {
	return newLimiter(limiterConfig{
		max:     200,
		window:  time.Minute,
		message: "Too many searches. Please try again in 1 minute.",
	})
}

// ShareRateLimiter - Creación de links compartibles
// 30 requests por minuto
func ShareRateLimiter() fiber.Handler {
	return newLimiter(limiterConfig{
		max:     30,
		window:  time.Minute,
		message: "Too many share links. Please try again in 1 minute.",
	})
}

// ScrapingRateLimiter - Enriquecimiento externo (LLM o navegador headless)
// 5 requests cada 5 minutos
func ScrapingRateLimiter() fiber.Handler {
	return newLimiter(limiterConfig{
		max:     5,
		window:  5 * time.Minute,
		message: "Enrichment is rate-limited to 5 requests per 5 minutes.",
	})
}

// WhenEnriching aplica limit solo si la búsqueda pide enriquecimiento
// (?enrich=true o "enrich": true en el cuerpo). Pasar la misma instancia que
// protege /api/routes/enrich para que todas las llamadas externas compartan cupo.
func WhenEnriching(limit fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !wantsEnrichment(c) {
			return c.Next()
		}
		return limit(c)
	}
}

func wantsEnrichment(c *fiber.Ctx) bool {
	if c.QueryBool("enrich", false) {
		return true
	}
	if c.Method() != fiber.MethodPost || len(c.Body()) == 0 {
		return false
	}
	// Cuerpo inválido: el handler responde 400 sin llegar al proveedor
	var req models.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return false
	}
	return req.Enrich
}
