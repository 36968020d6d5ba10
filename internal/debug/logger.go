package debug

import (
	"log"
	"os"
	"time"
)

var (
	enabled = false
)

func init() {
	// Leer la variable de entorno SAFIRI_DEBUG_DASHBOARD
	enabled = os.Getenv("SAFIRI_DEBUG_DASHBOARD") == "true"
	if enabled {
		log.Println("🐛 Debug Dashboard habilitado")
	}
}

// IsEnabled retorna si el dashboard de debugging está habilitado
func IsEnabled() bool {
	return enabled
}

// LogDebug envía un log de nivel debug al dashboard
func LogDebug(message string, metadata map[string]interface{}) {
	if !enabled {
		return
	}
	SendLog("backend", "debug", message, metadata)
}

// LogInfo envía un log de nivel info al dashboard
func LogInfo(message string, metadata map[string]interface{}) {
	if !enabled {
		return
	}
	SendLog("backend", "info", message, metadata)
}

// LogWarn envía un log de nivel warn al dashboard
func LogWarn(message string, metadata map[string]interface{}) {
	if !enabled {
		return
	}
	SendLog("backend", "warn", message, metadata)
}

// LogError envía un log de nivel error al dashboard
func LogError(message string, metadata map[string]interface{}) {
	if !enabled {
		return
	}
	SendLog("backend", "error", message, metadata)
}

// UpdateMetrics envía métricas actualizadas al dashboard
func UpdateMetrics(memoryMB float64, goroutines, searches, enrichments int) {
	if !enabled {
		return
	}

	metrics := []Metric{
		{Name: "Memory", Value: memoryMB, Unit: "MB", Trend: getTrend(memoryMB, 512)},
		{Name: "Goroutines", Value: goroutines, Trend: "stable"},
		{Name: "Searches", Value: searches, Trend: "stable"},
		{Name: "Enrichments", Value: enrichments, Trend: "stable"},
	}

	SendMetrics(metrics)
}

func getTrend(value, threshold float64) string {
	if value > threshold {
		return "up"
	} else if value < threshold*0.5 {
		return "down"
	}
	return "stable"
}

// UpdateApiStatus envía el estado de los servicios al dashboard
func UpdateApiStatus(backendStatus, enrichmentStatus, dbStatus, version string) {
	if !enabled {
		return
	}

	var status ApiStatus
	status.Backend.Status = backendStatus
	status.Backend.Version = version
	status.Enrichment.Status = enrichmentStatus
	status.Database.Status = dbStatus

	SendApiStatus(status)
}

// UpdateEnrichmentStatus envía el estado del último enriquecimiento al dashboard
func UpdateEnrichmentStatus(provider, status string, lastRun time.Time, processed, errors int) {
	if !enabled {
		return
	}

	var st EnrichmentStatus
	st.Provider = provider
	st.Status = status
	st.LastRun = lastRun.UnixMilli()
	st.ItemsProcessed = processed
	st.Errors = errors

	SendEnrichmentStatus(st)
}
