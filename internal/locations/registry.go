package locations

import (
	"fmt"
	"sort"

	"github.com/yourorg/safiri/internal/geo"
	"github.com/yourorg/safiri/internal/validation"
)

// Kind distingue ciudades de regiones administrativas
type Kind string

const (
	KindSettlement Kind = "city"
	KindRegion     Kind = "region"
)

// Location representa un lugar del catálogo
type Location struct {
	Name        string     `json:"name"`
	Kind        Kind       `json:"type"`
	Region      string     `json:"region,omitempty"` // Para ciudades: región a la que pertenecen
	Coordinates *geo.Point `json:"coordinates,omitempty"`
}

// HasCoordinates indica si la ubicación tiene coordenadas conocidas
func (l Location) HasCoordinates() bool {
	return l.Coordinates != nil
}

// Registry es un catálogo inmutable de ubicaciones indexado por nombre.
// Se construye una vez y es seguro para lectores concurrentes.
type Registry struct {
	byName map[string]Location
	all    []Location
	names  []string
}

// NewRegistry construye un registro validando nombres únicos y coordenadas
func NewRegistry(locs []Location) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]Location, len(locs)),
		all:    make([]Location, 0, len(locs)),
		names:  make([]string, 0, len(locs)),
	}

	for _, loc := range locs {
		if loc.Name == "" {
			return nil, fmt.Errorf("ubicación sin nombre (tipo %q)", loc.Kind)
		}
		if _, dup := r.byName[loc.Name]; dup {
			return nil, fmt.Errorf("ubicación duplicada: %q", loc.Name)
		}
		if loc.Coordinates != nil {
			if err := validation.ValidateCoordinatePair(loc.Coordinates.Lat, loc.Coordinates.Lng, loc.Name); err != nil {
				return nil, fmt.Errorf("coordenadas inválidas para %q: %w", loc.Name, err)
			}
			// Copia propia para que nadie pueda mutar el catálogo desde afuera
			p := *loc.Coordinates
			loc.Coordinates = &p
		}

		r.byName[loc.Name] = loc
		r.all = append(r.all, loc)
		r.names = append(r.names, loc.Name)
	}

	sort.Strings(r.names)
	return r, nil
}

// Lookup busca una ubicación por nombre exacto (sensible a mayúsculas).
// No encontrar el nombre es un resultado normal.
func (r *Registry) Lookup(name string) (Location, bool) {
	loc, ok := r.byName[name]
	if ok && loc.Coordinates != nil {
		p := *loc.Coordinates
		loc.Coordinates = &p
	}
	return loc, ok
}

// Names retorna todos los nombres ordenados ascendentemente
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// All retorna una copia del catálogo en orden de definición
func (r *Registry) All() []Location {
	out := make([]Location, len(r.all))
	for i, loc := range r.all {
		if loc.Coordinates != nil {
			p := *loc.Coordinates
			loc.Coordinates = &p
		}
		out[i] = loc
	}
	return out
}

// Len retorna la cantidad de ubicaciones
func (r *Registry) Len() int {
	return len(r.all)
}

// Distance calcula la distancia en km entre dos ubicaciones.
// Sin coordenadas se usa geo.FallbackDistanceKm.
func Distance(a, b Location) float64 {
	return geo.DistanceKm(a.Coordinates, b.Coordinates)
}
