package geo

import "math"

// Radio terrestre medio en kilómetros
const earthRadiusKm = 6371.0

// FallbackDistanceKm se usa cuando alguna ubicación no tiene coordenadas
// (por ejemplo, las regiones administrativas del catálogo).
const FallbackDistanceKm = 300.0

// Point representa una coordenada geográfica en grados
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// HaversineKm calcula la distancia de gran círculo entre dos puntos
func HaversineKm(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// DistanceKm retorna la distancia entre dos puntos opcionales.
// Si falta alguno de los dos se retorna FallbackDistanceKm (modo degradado, no es error).
func DistanceKm(a, b *Point) float64 {
	if a == nil || b == nil {
		return FallbackDistanceKm
	}
	return HaversineKm(*a, *b)
}
