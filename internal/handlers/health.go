package handlers

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/safiri/internal/db"
	"github.com/yourorg/safiri/internal/debug"
)

// HealthResponse representa el estado de salud del sistema
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Locations int               `json:"locations"`
	Version   string            `json:"version,omitempty"`
}

// HealthHandler reporta el estado de los componentes
type HealthHandler struct {
	provider  func() string
	locations int
}

// NewHealthHandler crea el handler. provider retorna el proveedor de enriquecimiento activo.
func NewHealthHandler(provider func() string, locationCount int) *HealthHandler {
	return &HealthHandler{provider: provider, locations: locationCount}
}

// Health proporciona un health check completo del sistema
// GET /api/health
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	services := make(map[string]string)
	overall := "healthy"

	// ============================================================================
	// CHECK: Catálogo de ubicaciones
	// ============================================================================
	if h.locations > 0 {
		services["locations"] = "healthy"
	} else {
		services["locations"] = "empty"
		overall = "degraded"
	}

	// ============================================================================
	// CHECK: Base de Datos (opcional, solo historial de enriquecimiento)
	// ============================================================================
	conn := getDBConn()
	switch {
	case conn != nil:
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := conn.PingContext(ctx); err != nil {
			services["database"] = "unhealthy: " + err.Error()
			overall = "degraded"
		} else {
			services["database"] = "healthy"
		}
	case db.Configured():
		services["database"] = "not_initialized"
		overall = "degraded"
	default:
		services["database"] = "not_configured"
	}

	// ============================================================================
	// CHECK: Enriquecimiento (best-effort, nunca degrada el servicio)
	// ============================================================================
	provider := "off"
	if h.provider != nil {
		provider = h.provider()
	}
	services["enrichment"] = provider

	version := os.Getenv("APP_VERSION")
	debug.UpdateApiStatus(overall, provider, services["database"], version)

	// ============================================================================
	// Determinar código de estado HTTP
	// ============================================================================
	statusCode := fiber.StatusOK
	if overall == "degraded" {
		statusCode = fiber.StatusServiceUnavailable
	}

	return c.Status(statusCode).JSON(HealthResponse{
		Status:    overall,
		Timestamp: time.Now(),
		Services:  services,
		Locations: h.locations,
		Version:   version,
	})
}

// HealthSummary es la versión de una línea usada por el CLI
func HealthSummary(resp HealthResponse) string {
	return fmt.Sprintf("%s (db=%s, enrichment=%s, locations=%d)",
		resp.Status, resp.Services["database"], resp.Services["enrichment"], resp.Locations)
}
