package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/yourorg/safiri/internal/cache"
	appdb "github.com/yourorg/safiri/internal/db"
	"github.com/yourorg/safiri/internal/debug"
	"github.com/yourorg/safiri/internal/enrich"
	"github.com/yourorg/safiri/internal/handlers"
	"github.com/yourorg/safiri/internal/locations"
	"github.com/yourorg/safiri/internal/middleware"
	"github.com/yourorg/safiri/internal/rail"
	"github.com/yourorg/safiri/internal/routes"
	"github.com/yourorg/safiri/internal/routing"
)

func main() {
	_ = godotenv.Load()

	app := fiber.New(fiber.Config{
		AppName: "Safiri",
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(middleware.DashboardLogger())
	app.Use(middleware.MetricsMiddleware())
	app.Use(middleware.GlobalRateLimiter())

	// ============================================================================
	// MOTOR DE RUTAS Y ENRIQUECIMIENTO
	// ============================================================================
	cache.InitCaches()

	registry := locations.Default()
	corridors := rail.Default()
	engine := routing.NewEngine(registry, corridors)

	enricher := enrich.NewEnricher(enrich.NewSourceFromEnv(), enrich.TimeoutFromEnv(), cache.ScrapeCache)
	if enricher.Enabled() {
		log.Printf("✨ Enriquecimiento activo: %s (timeout %s)", enricher.Provider(), enricher.Timeout())
	} else {
		log.Println("ℹ️  Enriquecimiento deshabilitado (ENRICH_PROVIDER)")
	}

	// La búsqueda no depende de la base de datos: las rutas se registran de inmediato
	routes.Register(app, routes.Deps{
		Engine:    engine,
		Enricher:  enricher,
		Registry:  registry,
		Corridors: corridors,
	})
	log.Printf("✅ Catálogo cargado: %d ubicaciones, %d corredores", registry.Len(), len(corridors.Corridors()))

	if debug.IsEnabled() {
		go middleware.PeriodicMetricsCollector(10 * time.Second)
	}

	// ============================================================================
	// DB CONNECTION (opcional, historial de enriquecimiento)
	// ============================================================================
	var (
		dbMu   sync.Mutex
		dbConn *sql.DB
	)

	if appdb.Configured() {
		go func() {
			for {
				conn, err := appdb.Connect()
				if err != nil {
					log.Printf("db connect error: %v (retrying in 5s)", err)
					time.Sleep(5 * time.Second)
					continue
				}

				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				err = conn.PingContext(ctx)
				cancel()
				if err != nil {
					conn.Close()
					log.Printf("db ping error: %v (retrying in 5s)", err)
					time.Sleep(5 * time.Second)
					continue
				}

				if err := appdb.EnsureSchema(conn); err != nil {
					conn.Close()
					log.Printf("ensure schema error: %v (retrying in 5s)", err)
					time.Sleep(5 * time.Second)
					continue
				}

				handlers.Setup(conn)
				enricher.SetRecorder(appdb.NewEnrichmentStore(conn))

				dbMu.Lock()
				dbConn = conn
				dbMu.Unlock()

				log.Printf("✅ Database ready, enrichment runs will be recorded")
				return
			}
		}()
	} else {
		log.Println("ℹ️  DB_NAME no definido: sin historial de enriquecimiento")
	}

	// ============================================================================
	// GRACEFUL SHUTDOWN
	// ============================================================================
	// Capturar señales de terminación (Ctrl+C, kill, etc.)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	shutdownDone := make(chan struct{})

	go func() {
		defer close(shutdownDone)
		<-sigChan
		log.Println("\n🛑 Señal de terminación recibida, cerrando servidor...")

		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("⚠️  Error cerrando servidor: %v", err)
		}

		cache.StopCaches()
		enricher.Flush()

		dbMu.Lock()
		if dbConn != nil {
			dbConn.Close()
		}
		dbMu.Unlock()

		log.Println("✅ Servidor cerrado correctamente")
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Servidor escuchando en :%s", port)
	log.Println("📍 Endpoints disponibles:")
	log.Println("   GET  /api/health                 - Estado del sistema")
	log.Println("   GET  /api/locations              - Ubicaciones (?detailed=true)")
	log.Println("   GET  /api/corridors              - Corredores de tren")
	log.Println("   GET  /api/routes/search          - Buscar rutas (?origin&destination&enrich)")
	log.Println("   POST /api/routes/search          - Buscar rutas (JSON)")
	log.Println("   POST /api/routes/enrich          - Enriquecer rutas con datos externos")
	log.Println("   POST /api/routes/share           - Crear link compartible")
	log.Println("   GET  /api/routes/shared/:token   - Abrir búsqueda compartida")
	log.Println("   GET  /api/stats/enrichment       - Historial de enriquecimiento")
	log.Println("💡 Presiona Ctrl+C para detener")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
	<-shutdownDone
}
