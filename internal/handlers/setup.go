package handlers

import (
	"database/sql"
	"log"
	"os"
	"sync"
	"time"

	"github.com/yourorg/safiri/internal/db"
)

// package-level dependencies
var (
	setupOnce     sync.Once    // Garantiza inicialización única
	setupMu       sync.RWMutex // Protege acceso a variables globales
	dbConn        *sql.DB
	enrichStore   *db.EnrichmentStore
	shareOnce     sync.Once
	shareSecret   []byte
	shareTTL      = 7 * 24 * time.Hour
	devSecret     = "safiri-dev-share-secret-change-me"
	minSecretSize = 32
)

// Setup wires the database into handlers once it is reachable.
// Search works without it; only the enrichment run log depends on it.
func Setup(conn *sql.DB) {
	setupOnce.Do(func() {
		setupMu.Lock()
		defer setupMu.Unlock()

		dbConn = conn
		enrichStore = db.NewEnrichmentStore(conn)
	})
}

// getDBConn retorna la conexión de base de datos de forma segura
func getDBConn() *sql.DB {
	setupMu.RLock()
	defer setupMu.RUnlock()
	return dbConn
}

// getEnrichmentStore retorna el store del historial de enriquecimiento (nil sin DB)
func getEnrichmentStore() *db.EnrichmentStore {
	setupMu.RLock()
	defer setupMu.RUnlock()
	return enrichStore
}

// getShareConfig lee SHARE_SECRET y SHARE_TTL la primera vez que se necesitan
func getShareConfig() ([]byte, time.Duration) {
	shareOnce.Do(func() {
		secret := os.Getenv("SHARE_SECRET")
		if secret == "" {
			// Verificar si estamos en producción
			if os.Getenv("ENV") == "production" || os.Getenv("ENVIRONMENT") == "production" {
				log.Fatal("❌ CRITICAL: SHARE_SECRET must be set in production environment")
			}
			log.Println("⚠️ WARNING: Using default share secret (development only)")
			secret = devSecret
		}

		// Validar longitud mínima del secret
		if len(secret) < minSecretSize {
			log.Fatalf("❌ CRITICAL: SHARE_SECRET must be at least %d characters long (current: %d)", minSecretSize, len(secret))
		}

		if ttl := os.Getenv("SHARE_TTL"); ttl != "" {
			dur, err := time.ParseDuration(ttl)
			if err != nil || dur <= 0 {
				log.Printf("invalid SHARE_TTL=%q, using default %s", ttl, shareTTL)
			} else {
				shareTTL = dur
			}
		}

		setupMu.Lock()
		shareSecret = []byte(secret)
		setupMu.Unlock()
	})

	setupMu.RLock()
	defer setupMu.RUnlock()
	return shareSecret, shareTTL
}
