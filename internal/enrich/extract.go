package enrich

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/yourorg/safiri/internal/models"
)

// Desde el primer '[' hasta el último ']'
var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// ExtractRoutes busca un arreglo JSON de rutas dentro de texto libre.
// Primero intenta el tramo más amplio entre corchetes; si no parsea,
// prueba desde cada '[' hasta encontrar el primer arreglo bien formado.
func ExtractRoutes(text string) ([]models.ScrapedRoute, error) {
	if match := jsonArrayPattern.FindString(text); match != "" {
		var routes []models.ScrapedRoute
		if err := json.Unmarshal([]byte(match), &routes); err == nil {
			return routes, nil
		}
	}

	for i := strings.IndexByte(text, '['); i >= 0; {
		var routes []models.ScrapedRoute
		dec := json.NewDecoder(strings.NewReader(text[i:]))
		if err := dec.Decode(&routes); err == nil {
			return routes, nil
		}

		next := strings.IndexByte(text[i+1:], '[')
		if next < 0 {
			break
		}
		i += next + 1
	}

	return nil, ErrNoJSONArray
}
