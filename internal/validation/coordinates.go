package validation

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// CoordinateError representa un error de validación de coordenadas
type CoordinateError struct {
	Field   string
	Value   float64
	Message string
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%s: %s (valor: %.6f)", e.Field, e.Message, e.Value)
}

// ParamError representa un parámetro de búsqueda inválido
type ParamError struct {
	Field   string
	Message string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MaxLocationNameLength limita el largo de los nombres recibidos por la API
const MaxLocationNameLength = 100

func checkFinite(v float64, field string) error {
	if math.IsNaN(v) {
		return &CoordinateError{Field: field, Value: v, Message: "valor NaN no permitido"}
	}
	if math.IsInf(v, 0) {
		return &CoordinateError{Field: field, Value: v, Message: "valor infinito no permitido"}
	}
	return nil
}

// ValidateLatitude valida una coordenada de latitud
func ValidateLatitude(lat float64, fieldName string) error {
	if err := checkFinite(lat, fieldName); err != nil {
		return err
	}
	if lat < -90 || lat > 90 {
		return &CoordinateError{Field: fieldName, Value: lat, Message: "debe estar entre -90 y 90"}
	}
	return nil
}

// ValidateLongitude valida una coordenada de longitud
func ValidateLongitude(lon float64, fieldName string) error {
	if err := checkFinite(lon, fieldName); err != nil {
		return err
	}
	if lon < -180 || lon > 180 {
		return &CoordinateError{Field: fieldName, Value: lon, Message: "debe estar entre -180 y 180"}
	}
	return nil
}

// ValidateCoordinatePair valida un par de coordenadas (lat, lon)
func ValidateCoordinatePair(lat, lon float64, prefix string) error {
	if err := ValidateLatitude(lat, prefix+"_lat"); err != nil {
		return err
	}
	return ValidateLongitude(lon, prefix+"_lon")
}

// ValidateTanzaniaRegion valida que las coordenadas estén dentro de Tanzania
// (incluye Zanzíbar y Pemba). Aproximadamente: Lat -12.0 a -0.9, Lon 29.0 a 41.0
func ValidateTanzaniaRegion(lat, lon float64) error {
	const (
		minLat = -12.0
		maxLat = -0.9
		minLon = 29.0
		maxLon = 41.0
	)

	if lat < minLat || lat > maxLat {
		return &CoordinateError{
			Field:   "latitude",
			Value:   lat,
			Message: fmt.Sprintf("fuera del rango de Tanzania (%.1f a %.1f)", minLat, maxLat),
		}
	}

	if lon < minLon || lon > maxLon {
		return &CoordinateError{
			Field:   "longitude",
			Value:   lon,
			Message: fmt.Sprintf("fuera del rango de Tanzania (%.1f a %.1f)", minLon, maxLon),
		}
	}

	return nil
}

// ValidateLocationName valida un nombre de ubicación recibido por la API.
// Solo verifica forma; la existencia en el catálogo la decide el registro.
func ValidateLocationName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return &ParamError{Field: field, Message: "requerido"}
	}
	if utf8.RuneCountInString(name) > MaxLocationNameLength {
		return &ParamError{Field: field, Message: fmt.Sprintf("máximo %d caracteres", MaxLocationNameLength)}
	}
	return nil
}

// IsZeroCoordinate verifica si una coordenada es (0, 0)
func IsZeroCoordinate(lat, lon float64) bool {
	return lat == 0 && lon == 0
}
