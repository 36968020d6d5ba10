package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/yourorg/safiri/internal/models"
)

// ============================================================================
// CACHE SERVICE - IN-MEMORY CACHING CON TTL
// ============================================================================
// Caché thread-safe con expiración automática.
// Se usa para no repetir llamadas al servicio de enriquecimiento externo
// (LLM o navegador headless) para el mismo par origen-destino.
//
// Uso:
//   c := New[[]models.ScrapedRoute](30*time.Minute, time.Hour)
//   c.Set(ScrapeKey("Dar es Salaam", "Mbeya"), scraped)
//   if data, found := c.Get(ScrapeKey("Dar es Salaam", "Mbeya")); found {
//       return data
//   }

// Item representa un elemento en caché con timestamp de expiración
type Item[V any] struct {
	Value      V
	Expiration int64 // Unix nano, 0 = no expira
}

// Cache es un almacén thread-safe de key-value con TTL
type Cache[V any] struct {
	items             map[string]Item[V]
	mu                sync.RWMutex
	defaultExpiration time.Duration
	cleanupInterval   time.Duration
	stopCleanup       chan struct{}
	stopOnce          sync.Once
}

// New crea una nueva instancia de caché con TTL por defecto.
// cleanupInterval ejecuta limpieza periódica de items expirados.
func New[V any](defaultExpiration, cleanupInterval time.Duration) *Cache[V] {
	c := &Cache[V]{
		items:             make(map[string]Item[V]),
		defaultExpiration: defaultExpiration,
		cleanupInterval:   cleanupInterval,
		stopCleanup:       make(chan struct{}),
	}

	if cleanupInterval > 0 {
		go c.startCleanupTimer()
	}

	return c
}

// Set almacena un valor con la expiración por defecto
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.defaultExpiration)
}

// SetWithTTL almacena un valor con una duración de expiración específica
func (c *Cache[V]) SetWithTTL(key string, value V, duration time.Duration) {
	var expiration int64
	if duration > 0 {
		expiration = time.Now().Add(duration).UnixNano()
	}

	c.mu.Lock()
	c.items[key] = Item[V]{Value: value, Expiration: expiration}
	c.mu.Unlock()
}

// Get recupera un valor si existe y no ha expirado
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	item, found := c.items[key]
	c.mu.RUnlock()

	var zero V
	if !found {
		return zero, false
	}

	if item.Expiration > 0 && time.Now().UnixNano() > item.Expiration {
		c.Delete(key)
		return zero, false
	}

	return item.Value, true
}

// Delete elimina un key del caché
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// DeletePrefix elimina todas las keys que empiezan con el prefijo dado
// (ej: "scrape:Dar es Salaam" invalida todos los destinos desde Dar)
func (c *Cache[V]) DeletePrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
			count++
		}
	}
	return count
}

// Clear limpia completamente el caché
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	c.items = make(map[string]Item[V])
	c.mu.Unlock()
}

// Count retorna el número de items en caché (incluye expirados)
func (c *Cache[V]) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats retorna estadísticas del caché
type Stats struct {
	TotalItems   int     `json:"total_items"`
	ExpiredItems int     `json:"expired_items"`
	ValidItems   int     `json:"valid_items"`
	TTLMinutes   float64 `json:"ttl_minutes"`
}

// GetStats retorna estadísticas actuales del caché
func (c *Cache[V]) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := Stats{
		TotalItems: len(c.items),
		TTLMinutes: c.defaultExpiration.Minutes(),
	}

	now := time.Now().UnixNano()
	for _, item := range c.items {
		if item.Expiration > 0 && now > item.Expiration {
			stats.ExpiredItems++
		} else {
			stats.ValidItems++
		}
	}

	return stats
}

func (c *Cache[V]) startCleanupTimer() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.deleteExpired()
		case <-c.stopCleanup:
			return
		}
	}
}

func (c *Cache[V]) deleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for key, item := range c.items {
		if item.Expiration > 0 && now > item.Expiration {
			delete(c.items, key)
		}
	}
}

// Stop detiene la limpieza automática. Es seguro llamarlo más de una vez.
func (c *Cache[V]) Stop() {
	c.stopOnce.Do(func() { close(c.stopCleanup) })
}

// ============================================================================
// CACHE PRESETS
// ============================================================================

var (
	// ScrapeCache - Resultados del enriquecimiento externo (TTL: 30 minutos)
	// Llamar al LLM o al navegador es lento y costoso
	ScrapeCache *Cache[[]models.ScrapedRoute]
)

// ScrapeKey genera la key de caché de un par origen-destino
func ScrapeKey(origin, destination string) string {
	return "scrape:" + origin + "->" + destination
}

// InitCaches inicializa los cachés compartidos
func InitCaches() {
	// 30min TTL, limpieza cada hora
	ScrapeCache = New[[]models.ScrapedRoute](30*time.Minute, time.Hour)
}

// StopCaches detiene todos los cachés
func StopCaches() {
	if ScrapeCache != nil {
		ScrapeCache.Stop()
	}
}

// ClearAllCaches limpia todos los cachés
func ClearAllCaches() int {
	cleared := 0
	if ScrapeCache != nil {
		ScrapeCache.Clear()
		cleared++
	}
	return cleared
}

// GetAllCacheStats retorna estadísticas de todos los cachés
func GetAllCacheStats() map[string]Stats {
	stats := make(map[string]Stats)
	if ScrapeCache != nil {
		stats["scrape"] = ScrapeCache.GetStats()
	}
	return stats
}
