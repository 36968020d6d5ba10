package enrich

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout es el tiempo máximo de un intento de enriquecimiento
const DefaultTimeout = 15 * time.Second

var (
	// ErrDisabled indica que no hay proveedor configurado
	ErrDisabled = errors.New("enrichment disabled")
	// ErrNoJSONArray indica que el texto no contiene un arreglo JSON válido
	ErrNoJSONArray = errors.New("no JSON array found in enrichment text")
	// ErrEmpty indica que la fuente respondió sin rutas
	ErrEmpty = errors.New("enrichment returned no routes")
	// ErrNoBaseline indica que no hay rutas base que enriquecer
	ErrNoBaseline = errors.New("no baseline routes to enrich")
)

// Source produce texto libre (respuesta de un LLM o texto de una página)
// que describe horarios entre dos ubicaciones.
type Source interface {
	Name() string
	Generate(ctx context.Context, origin, destination string) (string, error)
}

// NewSourceFromEnv construye la fuente según ENRICH_PROVIDER:
//
//	llm     - API compatible con chat completions (ENRICH_API_URL, ENRICH_API_KEY, ENRICH_MODEL)
//	browser - Chrome headless sobre ENRICH_BROWSER_URL
//	off     - sin enriquecimiento
//
// Sin ENRICH_PROVIDER se usa llm solo si hay ENRICH_API_KEY.
// Retorna nil cuando el enriquecimiento queda deshabilitado.
func NewSourceFromEnv() Source {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("ENRICH_PROVIDER")))
	if provider == "" && os.Getenv("ENRICH_API_KEY") != "" {
		provider = "llm"
	}

	switch provider {
	case "llm":
		if os.Getenv("ENRICH_API_KEY") == "" {
			log.Printf("⚠️  [ENRICH] ENRICH_PROVIDER=llm sin ENRICH_API_KEY, enriquecimiento deshabilitado")
			return nil
		}
		return NewLLMSource()
	case "browser":
		tmpl := os.Getenv("ENRICH_BROWSER_URL")
		if tmpl == "" {
			log.Printf("⚠️  [ENRICH] ENRICH_PROVIDER=browser sin ENRICH_BROWSER_URL, enriquecimiento deshabilitado")
			return nil
		}
		return NewBrowserSource(tmpl)
	case "", "off", "none", "false":
		return nil
	default:
		log.Printf("⚠️  [ENRICH] ENRICH_PROVIDER desconocido %q, enriquecimiento deshabilitado", provider)
		return nil
	}
}

// TimeoutFromEnv lee ENRICH_TIMEOUT ("20s", "1m" o segundos enteros)
func TimeoutFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("ENRICH_TIMEOUT"))
	if raw == "" {
		return DefaultTimeout
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	log.Printf("⚠️  [ENRICH] ENRICH_TIMEOUT inválido %q, usando %s", raw, DefaultTimeout)
	return DefaultTimeout
}
