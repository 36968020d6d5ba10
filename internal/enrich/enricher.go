package enrich

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/yourorg/safiri/internal/cache"
	"github.com/yourorg/safiri/internal/debug"
	"github.com/yourorg/safiri/internal/models"
)

// Recorder persiste cada intento de enriquecimiento (ej: tabla enrichment_runs)
type Recorder interface {
	RecordRun(ctx context.Context, run models.EnrichmentRun) error
}

const recordTimeout = 5 * time.Second

// Enricher intenta mejorar las rutas calculadas con datos externos.
// Un solo intento por llamada, acotado por timeout; ante cualquier
// problema se retorna la lista base tal cual.
type Enricher struct {
	source  Source
	timeout time.Duration
	cache   *cache.Cache[[]models.ScrapedRoute]

	mu       sync.RWMutex
	recorder Recorder
	records  sync.WaitGroup

	processed atomic.Int64
	failures  atomic.Int64
}

// NewEnricher crea un Enricher. source nil deja el enriquecimiento deshabilitado;
// scrapeCache nil desactiva el caché.
func NewEnricher(source Source, timeout time.Duration, scrapeCache *cache.Cache[[]models.ScrapedRoute]) *Enricher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Enricher{
		source:  source,
		timeout: timeout,
		cache:   scrapeCache,
	}
}

// SetRecorder conecta el registro de intentos (puede llegar después de arrancar)
func (e *Enricher) SetRecorder(r Recorder) {
	e.mu.Lock()
	e.recorder = r
	e.mu.Unlock()
}

// Enabled indica si hay un proveedor configurado
func (e *Enricher) Enabled() bool {
	return e != nil && e.source != nil
}

// Provider retorna el nombre del proveedor o "off"
func (e *Enricher) Provider() string {
	if !e.Enabled() {
		return "off"
	}
	return e.source.Name()
}

// Timeout retorna el límite de cada intento
func (e *Enricher) Timeout() time.Duration {
	return e.timeout
}

// Enrich retorna las rutas enriquecidas o, ante cualquier error, baseline sin cambios
func (e *Enricher) Enrich(ctx context.Context, origin, destination string, baseline []models.Route) []models.Route {
	routes, _ := e.TryEnrich(ctx, origin, destination, baseline)
	return routes
}

// TryEnrich es como Enrich pero también retorna la causa cuando se usa baseline.
// Las rutas retornadas nunca son nil si baseline no lo es.
func (e *Enricher) TryEnrich(ctx context.Context, origin, destination string, baseline []models.Route) ([]models.Route, error) {
	if !e.Enabled() {
		return baseline, ErrDisabled
	}
	if len(baseline) == 0 {
		return baseline, ErrNoBaseline
	}

	start := time.Now()
	key := cache.ScrapeKey(origin, destination)

	if e.cache != nil {
		if scraped, ok := e.cache.Get(key); ok {
			log.Printf("💾 [ENRICH] Cache hit %s -> %s (%d rutas)", origin, destination, len(scraped))
			e.finish(ctx, origin, destination, models.RunCached, len(scraped), start, nil)
			return Merge(baseline, scraped), nil
		}
	}

	attemptCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	log.Printf("🔎 [ENRICH] %s -> %s via %s (timeout %s)", origin, destination, e.source.Name(), e.timeout)

	text, err := e.source.Generate(attemptCtx, origin, destination)
	if err != nil {
		err = fmt.Errorf("enrich %s -> %s: %w", origin, destination, err)
		log.Printf("❌ [ENRICH] %v", err)
		e.finish(ctx, origin, destination, models.RunFailed, 0, start, err)
		return baseline, err
	}

	scraped, err := ExtractRoutes(text)
	if err != nil {
		log.Printf("⚠️  [ENRICH] Respuesta sin JSON utilizable para %s -> %s", origin, destination)
		e.finish(ctx, origin, destination, models.RunFailed, 0, start, err)
		return baseline, err
	}

	if len(scraped) == 0 {
		log.Printf("⚠️  [ENRICH] Sin rutas externas para %s -> %s", origin, destination)
		e.finish(ctx, origin, destination, models.RunEmpty, 0, start, nil)
		return baseline, ErrEmpty
	}

	if e.cache != nil {
		e.cache.Set(key, scraped)
	}

	log.Printf("✅ [ENRICH] %d rutas externas para %s -> %s en %v", len(scraped), origin, destination, time.Since(start))
	e.finish(ctx, origin, destination, models.RunCompleted, len(scraped), start, nil)

	return Merge(baseline, scraped), nil
}

func (e *Enricher) finish(ctx context.Context, origin, destination, status string, parsed int, start time.Time, runErr error) {
	e.processed.Add(1)
	if runErr != nil {
		e.failures.Add(1)
	}

	debug.UpdateEnrichmentStatus(e.source.Name(), status, start,
		int(e.processed.Load()), int(e.failures.Load()))

	e.mu.RLock()
	recorder := e.recorder
	e.mu.RUnlock()
	if recorder == nil {
		return
	}

	run := models.EnrichmentRun{
		ID:           uuid.NewString(),
		Provider:     e.source.Name(),
		Origin:       origin,
		Destination:  destination,
		Status:       status,
		RoutesParsed: parsed,
		DurationMs:   time.Since(start).Milliseconds(),
		StartedAt:    start,
	}
	if runErr != nil {
		msg := runErr.Error()
		run.ErrorMessage = &msg
	}

	// Se registra en segundo plano: una DB lenta no retiene la respuesta base.
	// El contexto sobrevive al request pero queda acotado por recordTimeout.
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	e.records.Add(1)
	go func() {
		defer e.records.Done()
		defer cancel()
		if err := recorder.RecordRun(recordCtx, run); err != nil {
			log.Printf("⚠️  [ENRICH] No se pudo registrar el intento %s: %v", run.ID, err)
		}
	}()
}

// Flush espera los registros pendientes (usar antes de cerrar la DB)
func (e *Enricher) Flush() {
	if e == nil {
		return
	}
	e.records.Wait()
}
