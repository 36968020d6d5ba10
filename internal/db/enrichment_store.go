package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/yourorg/safiri/internal/models"
)

const maxErrorMessageLength = 500

// EnrichmentStore guarda el historial de intentos de enriquecimiento
type EnrichmentStore struct {
	db *sql.DB
}

// NewEnrichmentStore crea el store sobre una conexión existente
func NewEnrichmentStore(db *sql.DB) *EnrichmentStore {
	return &EnrichmentStore{db: db}
}

// RecordRun inserta un intento
func (s *EnrichmentStore) RecordRun(ctx context.Context, run models.EnrichmentRun) error {
	var errMsg sql.NullString
	if run.ErrorMessage != nil {
		errMsg = sql.NullString{String: truncateErrorMessage(*run.ErrorMessage), Valid: true}
	}

	startedAt := run.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO enrichment_runs
			(id, provider, origin, destination, status, routes_parsed, duration_ms, error_message, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Provider, run.Origin, run.Destination, run.Status,
		run.RoutesParsed, run.DurationMs, errMsg, startedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert enrichment run: %w", err)
	}
	return nil
}

// Summary agrega los intentos por proveedor de las últimas `since` horas.
// Los intentos servidos desde caché cuentan como exitosos.
func (s *EnrichmentStore) Summary(ctx context.Context, since time.Duration) ([]models.EnrichmentSummary, error) {
	cutoff := time.Now().Add(-since).UTC()

	rows, err := s.db.QueryContext(ctx, `
		SELECT provider,
			COUNT(*),
			SUM(CASE WHEN status IN ('completed', 'cached') THEN 1 ELSE 0 END),
			SUM(CASE WHEN status = 'empty' THEN 1 ELSE 0 END),
			SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END),
			COALESCE(SUM(routes_parsed), 0),
			COALESCE(AVG(duration_ms), 0),
			MAX(started_at)
		FROM enrichment_runs
		WHERE started_at >= ?
		GROUP BY provider
		ORDER BY provider`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("query enrichment summary: %w", err)
	}
	defer rows.Close()

	summaries := []models.EnrichmentSummary{}
	for rows.Next() {
		var sum models.EnrichmentSummary
		var lastRun sql.NullTime
		if err := rows.Scan(
			&sum.Provider,
			&sum.TotalRuns,
			&sum.SuccessfulRuns,
			&sum.EmptyRuns,
			&sum.FailedRuns,
			&sum.TotalRoutesParsed,
			&sum.AverageDurationMs,
			&lastRun,
		); err != nil {
			return nil, fmt.Errorf("scan enrichment summary: %w", err)
		}
		if lastRun.Valid {
			t := lastRun.Time
			sum.LastRun = &t
		}
		sum.SuccessRate = SuccessRate(sum.SuccessfulRuns, sum.TotalRuns)
		summaries = append(summaries, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate enrichment summary: %w", err)
	}
	return summaries, nil
}

// RecentRuns retorna los últimos intentos, más nuevos primero
func (s *EnrichmentStore) RecentRuns(ctx context.Context, limit int) ([]models.EnrichmentRun, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, provider, origin, destination, status, routes_parsed, duration_ms, error_message, started_at
		FROM enrichment_runs
		ORDER BY started_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent enrichment runs: %w", err)
	}
	defer rows.Close()

	runs := []models.EnrichmentRun{}
	for rows.Next() {
		var run models.EnrichmentRun
		var errMsg sql.NullString
		if err := rows.Scan(&run.ID, &run.Provider, &run.Origin, &run.Destination, &run.Status,
			&run.RoutesParsed, &run.DurationMs, &errMsg, &run.StartedAt); err != nil {
			return nil, fmt.Errorf("scan enrichment run: %w", err)
		}
		if errMsg.Valid {
			msg := errMsg.String
			run.ErrorMessage = &msg
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate enrichment runs: %w", err)
	}
	return runs, nil
}

// SuccessRate retorna el porcentaje de éxito redondeado a un decimal
func SuccessRate(successful, total int) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(successful) / float64(total) * 100
	return float64(int(rate*10+0.5)) / 10
}

// truncateErrorMessage corta en maxErrorMessageLength bytes sin partir un rune
// (utf8mb4 en modo estricto rechaza secuencias inválidas)
func truncateErrorMessage(msg string) string {
	if len(msg) <= maxErrorMessageLength {
		return msg
	}
	cut := maxErrorMessageLength
	for cut > 0 && !utf8.RuneStart(msg[cut]) {
		cut--
	}
	return msg[:cut]
}
