package db

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/yourorg/safiri/internal/models"
)

func TestSuccessRate(t *testing.T) {
	tests := []struct {
		successful, total int
		want              float64
	}{
		{0, 0, 0},
		{1, 1, 100},
		{1, 3, 33.3},
		{2, 3, 66.7},
		{0, 5, 0},
	}

	for _, tt := range tests {
		if got := SuccessRate(tt.successful, tt.total); got != tt.want {
			t.Errorf("SuccessRate(%d, %d) = %v, want %v", tt.successful, tt.total, got, tt.want)
		}
	}
}

func TestTruncateErrorMessage(t *testing.T) {
	// "ñ" ocupa 2 bytes: 499 ASCII + "ñ" deja el rune cruzando el límite
	split := strings.Repeat("a", maxErrorMessageLength-1) + "ñ" + "xyz"

	tests := []struct {
		name string
		msg  string
		want int
	}{
		{"short", "upstream timeout", len("upstream timeout")},
		{"exact", strings.Repeat("a", maxErrorMessageLength), maxErrorMessageLength},
		{"ascii overflow", strings.Repeat("a", maxErrorMessageLength+20), maxErrorMessageLength},
		{"rune on boundary", split, maxErrorMessageLength - 1},
		{"multibyte only", strings.Repeat("é", maxErrorMessageLength), maxErrorMessageLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateErrorMessage(tt.msg)
			if len(got) != tt.want {
				t.Errorf("Expected %d bytes, got %d", tt.want, len(got))
			}
			if !utf8.ValidString(got) {
				t.Errorf("Expected valid UTF-8, got %q", got[len(got)-4:])
			}
			if !strings.HasPrefix(tt.msg, got) {
				t.Error("Expected a prefix of the original message")
			}
		})
	}
}

func TestConnectRequiresName(t *testing.T) {
	t.Setenv("DB_NAME", "")
	if Configured() {
		t.Error("Expected not configured without DB_NAME")
	}
	if _, err := Connect(); err == nil {
		t.Error("Expected error without DB_NAME")
	}
}

// Requiere MySQL/MariaDB real: DB_NAME, DB_USER, DB_PASS, DB_HOST
func TestEnrichmentStoreIntegration(t *testing.T) {
	if !Configured() {
		t.Skip("DB_NAME not set, skipping MySQL integration test")
	}

	conn, err := Connect()
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		t.Skipf("database not reachable: %v", err)
	}
	if err := EnsureSchema(conn); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	provider := "test-" + uuid.NewString()[:8]
	store := NewEnrichmentStore(conn)
	defer conn.ExecContext(context.Background(), "DELETE FROM enrichment_runs WHERE provider = ?", provider)

	failure := "LLM returned status 500"
	runs := []models.EnrichmentRun{
		{ID: uuid.NewString(), Provider: provider, Origin: "Dar es Salaam", Destination: "Mbeya", Status: models.RunCompleted, RoutesParsed: 4, DurationMs: 1200, StartedAt: time.Now()},
		{ID: uuid.NewString(), Provider: provider, Origin: "Dar es Salaam", Destination: "Mbeya", Status: models.RunCached, RoutesParsed: 4, DurationMs: 1, StartedAt: time.Now()},
		{ID: uuid.NewString(), Provider: provider, Origin: "Arusha", Destination: "Lindi", Status: models.RunFailed, DurationMs: 15000, ErrorMessage: &failure, StartedAt: time.Now()},
	}
	for _, run := range runs {
		if err := store.RecordRun(ctx, run); err != nil {
			t.Fatalf("record run: %v", err)
		}
	}

	summaries, err := store.Summary(ctx, time.Hour)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	var found *models.EnrichmentSummary
	for i := range summaries {
		if summaries[i].Provider == provider {
			found = &summaries[i]
		}
	}
	if found == nil {
		t.Fatalf("Expected summary for provider %s", provider)
	}
	if found.TotalRuns != 3 || found.SuccessfulRuns != 2 || found.FailedRuns != 1 {
		t.Errorf("Unexpected summary %+v", found)
	}
	if found.TotalRoutesParsed != 8 || found.SuccessRate != 66.7 {
		t.Errorf("Unexpected totals %+v", found)
	}
}
