package locations

import (
	"fmt"

	"github.com/yourorg/safiri/internal/geo"
	"github.com/yourorg/safiri/internal/validation"
)

func city(name, region string, lat, lng float64) Location {
	return Location{Name: name, Kind: KindSettlement, Region: region, Coordinates: &geo.Point{Lat: lat, Lng: lng}}
}

func region(name string) Location {
	return Location{Name: name, Kind: KindRegion}
}

// tanzania es el catálogo estático de ciudades principales y regiones
var tanzania = []Location{
	// Ciudades principales
	city("Dar es Salaam", "Dar es Salaam", -6.7924, 39.2083),
	city("Dodoma", "Dodoma", -6.163, 35.7516),
	city("Mwanza", "Mwanza", -2.5164, 32.9175),
	city("Arusha", "Arusha", -3.3869, 36.683),
	city("Mbeya", "Mbeya", -8.9094, 33.4606),
	city("Morogoro", "Morogoro", -6.8235, 37.6609),
	city("Tanga", "Tanga", -5.0689, 39.0982),
	city("Zanzibar City", "Zanzibar West", -6.1659, 39.2026),
	city("Kigoma", "Kigoma", -4.8772, 29.629),
	city("Moshi", "Kilimanjaro", -3.3397, 37.3407),
	city("Tabora", "Tabora", -5.0167, 32.8),
	city("Iringa", "Iringa", -7.7667, 35.6833),
	city("Singida", "Singida", -4.8167, 34.7333),
	city("Shinyanga", "Shinyanga", -3.6636, 33.4217),
	city("Bukoba", "Kagera", -1.3314, 31.8122),
	city("Musoma", "Mara", -1.5, 33.8),
	city("Sumbawanga", "Rukwa", -7.9667, 31.6167),
	city("Songea", "Ruvuma", -10.6833, 35.65),
	city("Mtwara", "Mtwara", -10.2692, 40.1836),
	city("Lindi", "Lindi", -9.9971, 39.7177),

	// Regiones (viajes regionales, sin coordenadas)
	region("Arusha Region"),
	region("Dar es Salaam Region"),
	region("Dodoma Region"),
	region("Geita Region"),
	region("Iringa Region"),
	region("Kagera Region"),
	region("Katavi Region"),
	region("Kigoma Region"),
	region("Kilimanjaro Region"),
	region("Lindi Region"),
	region("Manyara Region"),
	region("Mara Region"),
	region("Mbeya Region"),
	region("Morogoro Region"),
	region("Mtwara Region"),
	region("Mwanza Region"),
	region("Njombe Region"),
	region("Pemba North Region"),
	region("Pemba South Region"),
	region("Pwani Region"),
	region("Rukwa Region"),
	region("Ruvuma Region"),
	region("Shinyanga Region"),
	region("Simiyu Region"),
	region("Singida Region"),
	region("Songwe Region"),
	region("Tabora Region"),
	region("Tanga Region"),
	region("Zanzibar North Region"),
	region("Zanzibar South Region"),
	region("Zanzibar West Region"),
}

var defaultRegistry = mustTanzania()

func mustTanzania() *Registry {
	for _, loc := range tanzania {
		if loc.Coordinates == nil {
			continue
		}
		if err := validation.ValidateTanzaniaRegion(loc.Coordinates.Lat, loc.Coordinates.Lng); err != nil {
			panic(fmt.Sprintf("catálogo de ubicaciones inválido: %s: %v", loc.Name, err))
		}
	}
	r, err := NewRegistry(tanzania)
	if err != nil {
		panic(fmt.Sprintf("catálogo de ubicaciones inválido: %v", err))
	}
	return r
}

// Default retorna el registro de Tanzania cargado al iniciar el proceso
func Default() *Registry {
	return defaultRegistry
}
