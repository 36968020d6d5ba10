package locations

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/yourorg/safiri/internal/geo"
	"github.com/yourorg/safiri/internal/validation"
)

func TestDefaultRegistryNamesSorted(t *testing.T) {
	names := Default().Names()

	if len(names) != 51 {
		t.Errorf("Expected 51 locations (20 cities + 31 regions), got %d", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("Expected names to be sorted ascending")
	}

	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("Duplicate name %q", n)
		}
		seen[n] = true
	}

	if names[0] != "Arusha" {
		t.Errorf("Expected first name to be Arusha, got %q", names[0])
	}
}

func TestLookup(t *testing.T) {
	r := Default()

	loc, ok := r.Lookup("Dar es Salaam")
	if !ok {
		t.Fatal("Expected to find Dar es Salaam")
	}
	if loc.Kind != KindSettlement || !loc.HasCoordinates() {
		t.Errorf("Expected Dar es Salaam to be a city with coordinates, got %+v", loc)
	}

	region, ok := r.Lookup("Pwani Region")
	if !ok {
		t.Fatal("Expected to find Pwani Region")
	}
	if region.Kind != KindRegion || region.HasCoordinates() {
		t.Errorf("Expected Pwani Region to be a region without coordinates, got %+v", region)
	}

	// Búsqueda exacta, sensible a mayúsculas
	for _, name := range []string{"dar es salaam", "Nowhere", "", "Dar es Salaam "} {
		if _, ok := r.Lookup(name); ok {
			t.Errorf("Expected %q not to be found", name)
		}
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	r := Default()

	loc, _ := r.Lookup("Mwanza")
	loc.Coordinates.Lat = 0

	again, _ := r.Lookup("Mwanza")
	if again.Coordinates.Lat == 0 {
		t.Error("Expected registry to be immutable from callers")
	}

	names := r.Names()
	names[0] = "mutated"
	if r.Names()[0] == "mutated" {
		t.Error("Expected Names() to return a copy")
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry([]Location{
		{Name: "A", Kind: KindRegion},
		{Name: "A", Kind: KindRegion},
	})
	if err == nil {
		t.Fatal("Expected error for duplicate names")
	}
}

func TestNewRegistryRejectsInvalidCoordinates(t *testing.T) {
	_, err := NewRegistry([]Location{
		{Name: "Broken", Kind: KindSettlement, Coordinates: &geo.Point{Lat: 120, Lng: 10}},
	})

	var coordErr *validation.CoordinateError
	if !errors.As(err, &coordErr) {
		t.Fatalf("Expected wrapped *validation.CoordinateError, got %v", err)
	}
}

func TestDistance(t *testing.T) {
	r := Default()
	dar, _ := r.Lookup("Dar es Salaam")
	mbeya, _ := r.Lookup("Mbeya")
	pwani, _ := r.Lookup("Pwani Region")

	d := Distance(dar, mbeya)
	if d < 650 || d > 700 {
		t.Errorf("Expected ~675km between Dar es Salaam and Mbeya, got %.1f", d)
	}
	if math.Abs(Distance(mbeya, dar)-d) > 1e-9 {
		t.Error("Expected symmetric distance")
	}
	if Distance(dar, pwani) != geo.FallbackDistanceKm {
		t.Errorf("Expected fallback distance for region without coordinates")
	}
	if Distance(dar, dar) != 0 {
		t.Error("Expected zero distance for identical location")
	}
}
