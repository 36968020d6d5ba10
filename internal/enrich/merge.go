package enrich

import (
	"strings"

	"github.com/yourorg/safiri/internal/models"
)

// Merge superpone por posición los campos presentes de scraped sobre una
// copia de baseline. Solo operator, departure, price y frequency se
// reemplazan; arrival y duration quedan como los calculó el motor.
func Merge(baseline []models.Route, scraped []models.ScrapedRoute) []models.Route {
	out := make([]models.Route, len(baseline))
	copy(out, baseline)

	for i := range out {
		if i >= len(scraped) {
			break
		}
		s := scraped[i]
		overlay(&out[i].Operator, s.Operator)
		overlay(&out[i].Departure, s.Departure)
		overlay(&out[i].Price, s.Price)
		overlay(&out[i].Frequency, s.Frequency)
	}

	return out
}

// Un campo vacío o solo espacios cuenta como ausente
func overlay(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}
