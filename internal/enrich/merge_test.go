package enrich

import (
	"reflect"
	"testing"

	"github.com/yourorg/safiri/internal/models"
)

func baselineRoutes() []models.Route {
	return []models.Route{
		{Type: models.ModeBus, Operator: "Kilimanjaro Express", Departure: "06:00", Arrival: "17:15", Duration: "11h 15m", Price: "TZS 34,000", Frequency: "Daily service", Recommended: true},
		{Type: models.ModeBus, Operator: "Dar Express", Departure: "07:30", Arrival: "18:45", Duration: "11h 15m", Price: "TZS 33,000", Frequency: "Daily service"},
		{Type: models.ModeTrain, Operator: "TAZARA Railway", Departure: "08:00", Arrival: "22:30", Duration: "14h 30m", Price: "TZS 27,000", Frequency: "Daily service"},
	}
}

func TestMergePositionalOverlay(t *testing.T) {
	base := baselineRoutes()
	scraped := []models.ScrapedRoute{
		{Operator: "Shabiby Bus", Departure: "05:30", Arrival: "23:59", Price: "TZS 40,000"},
		{Frequency: "3x per week"},
	}

	merged := Merge(base, scraped)

	if len(merged) != len(base) {
		t.Fatalf("Expected %d routes, got %d", len(base), len(merged))
	}

	first := merged[0]
	if first.Operator != "Shabiby Bus" || first.Departure != "05:30" || first.Price != "TZS 40,000" {
		t.Errorf("Expected overlay on first route, got %+v", first)
	}
	// arrival, duration y recommended no se tocan
	if first.Arrival != "17:15" || first.Duration != "11h 15m" || !first.Recommended {
		t.Errorf("Expected computed fields to be preserved, got %+v", first)
	}
	if first.Frequency != "Daily service" {
		t.Errorf("Expected absent frequency to keep baseline, got %q", first.Frequency)
	}

	second := merged[1]
	if second.Operator != "Dar Express" || second.Frequency != "3x per week" {
		t.Errorf("Unexpected second route %+v", second)
	}

	if !reflect.DeepEqual(merged[2], base[2]) {
		t.Errorf("Expected unmatched route to be unchanged, got %+v", merged[2])
	}
}

func TestMergeDoesNotMutateBaseline(t *testing.T) {
	base := baselineRoutes()
	_ = Merge(base, []models.ScrapedRoute{{Operator: "Mtei Express"}})

	if base[0].Operator != "Kilimanjaro Express" {
		t.Errorf("Expected baseline to be untouched, got %q", base[0].Operator)
	}
}

func TestMergeBlankFieldsAreAbsent(t *testing.T) {
	merged := Merge(baselineRoutes(), []models.ScrapedRoute{{Operator: "   ", Price: ""}})

	if merged[0].Operator != "Kilimanjaro Express" || merged[0].Price != "TZS 34,000" {
		t.Errorf("Expected blank fields to be ignored, got %+v", merged[0])
	}
}

func TestMergeExtraScrapedIgnored(t *testing.T) {
	scraped := make([]models.ScrapedRoute, 10)
	for i := range scraped {
		scraped[i].Operator = "X"
	}

	merged := Merge(baselineRoutes(), scraped)
	if len(merged) != 3 {
		t.Errorf("Expected length of baseline, got %d", len(merged))
	}
}
