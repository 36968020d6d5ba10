package models

import "time"

// EnrichmentRun representa un intento de enriquecimiento con la fuente externa
type EnrichmentRun struct {
	ID           string    `json:"id"`
	Provider     string    `json:"provider"` // "llm" o "browser"
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Status       string    `json:"status"` // "completed", "empty", "failed", "cached"
	RoutesParsed int       `json:"routesParsed"`
	DurationMs   int64     `json:"durationMs"`
	ErrorMessage *string   `json:"errorMessage,omitempty"`
	StartedAt    time.Time `json:"startedAt"`
}

// Estados posibles de EnrichmentRun
const (
	RunCompleted = "completed"
	RunEmpty     = "empty"
	RunFailed    = "failed"
	RunCached    = "cached"
)

// EnrichmentSummary representa un resumen agregado de los intentos
type EnrichmentSummary struct {
	Provider          string     `json:"provider"`
	TotalRuns         int        `json:"totalRuns"`
	SuccessfulRuns    int        `json:"successfulRuns"`
	EmptyRuns         int        `json:"emptyRuns"`
	FailedRuns        int        `json:"failedRuns"`
	TotalRoutesParsed int        `json:"totalRoutesParsed"`
	AverageDurationMs float64    `json:"averageDurationMs"`
	LastRun           *time.Time `json:"lastRun,omitempty"`
	SuccessRate       float64    `json:"successRate"` // Porcentaje
}
