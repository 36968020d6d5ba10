package validation

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestValidateCoordinatePair(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
		field   string
	}{
		{"valid Dar es Salaam", -6.7924, 39.2083, false, ""},
		{"latitude too low", -91, 39, true, "origin_lat"},
		{"longitude too high", -6, 181, true, "origin_lon"},
		{"NaN latitude", math.NaN(), 39, true, "origin_lat"},
		{"infinite longitude", -6, math.Inf(1), true, "origin_lon"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCoordinatePair(tc.lat, tc.lon, "origin")
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var coordErr *CoordinateError
			if !errors.As(err, &coordErr) {
				t.Fatalf("expected *CoordinateError, got %v", err)
			}
			if coordErr.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, coordErr.Field)
			}
		})
	}
}

func TestValidateTanzaniaRegion(t *testing.T) {
	if err := ValidateTanzaniaRegion(-4.8772, 29.629); err != nil {
		t.Errorf("Kigoma should be inside Tanzania: %v", err)
	}
	if err := ValidateTanzaniaRegion(-6.1659, 39.2026); err != nil {
		t.Errorf("Zanzibar City should be inside Tanzania: %v", err)
	}
	// Lusaka
	if err := ValidateTanzaniaRegion(-15.3875, 28.3228); err == nil {
		t.Error("Expected Lusaka to be rejected")
	}
	// Santiago
	if err := ValidateTanzaniaRegion(-33.45, -70.66); err == nil {
		t.Error("Expected Santiago to be rejected")
	}
}

func TestValidateLocationName(t *testing.T) {
	if err := ValidateLocationName("origin", "Dar es Salaam"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	var paramErr *ParamError
	if err := ValidateLocationName("origin", "   "); !errors.As(err, &paramErr) {
		t.Errorf("expected *ParamError for blank name, got %v", err)
	}
	if err := ValidateLocationName("destination", strings.Repeat("a", MaxLocationNameLength+1)); err == nil {
		t.Error("expected error for oversized name")
	}
}

func TestIsZeroCoordinate(t *testing.T) {
	if !IsZeroCoordinate(0, 0) {
		t.Error("expected (0,0) to be zero")
	}
	if IsZeroCoordinate(-6.8, 0) {
		t.Error("expected (-6.8,0) not to be zero")
	}
}
