package geo

import (
	"math"
	"testing"
)

func TestHaversineKnownDistance(t *testing.T) {
	dar := Point{Lat: -6.7924, Lng: 39.2083}
	dodoma := Point{Lat: -6.163, Lng: 35.7516}

	got := HaversineKm(dar, dodoma)
	// Dar es Salaam - Dodoma en línea recta: ~386 km
	if got < 375 || got > 395 {
		t.Errorf("Expected ~386km between Dar es Salaam and Dodoma, got %.2f", got)
	}
}

func TestHaversineSymmetric(t *testing.T) {
	a := Point{Lat: -3.3869, Lng: 36.683}
	b := Point{Lat: -9.9971, Lng: 39.7177}

	ab := HaversineKm(a, b)
	ba := HaversineKm(b, a)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("Expected symmetric distance, got %.9f vs %.9f", ab, ba)
	}
}

func TestHaversineIdenticalPoints(t *testing.T) {
	p := Point{Lat: -2.5164, Lng: 32.9175}
	if d := HaversineKm(p, p); d != 0 {
		t.Errorf("Expected 0 for identical points, got %f", d)
	}
}

func TestHaversineAlongMeridian(t *testing.T) {
	// 150 km sobre el mismo meridiano
	lat := 150.0 / earthRadiusKm * 180 / math.Pi
	d := HaversineKm(Point{Lat: 0, Lng: 35}, Point{Lat: lat, Lng: 35})
	if math.Abs(d-150) > 1e-6 {
		t.Errorf("Expected 150km, got %.9f", d)
	}
}

func TestDistanceKmFallback(t *testing.T) {
	p := &Point{Lat: -6.7924, Lng: 39.2083}

	tests := []struct {
		name string
		a, b *Point
	}{
		{"missing first", nil, p},
		{"missing second", p, nil},
		{"missing both", nil, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DistanceKm(tc.a, tc.b); got != FallbackDistanceKm {
				t.Errorf("DistanceKm() = %f, expected %f", got, FallbackDistanceKm)
			}
		})
	}
}
