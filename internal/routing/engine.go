package routing

import (
	"log"
	"math"
	"sort"

	"github.com/yourorg/safiri/internal/debug"
	"github.com/yourorg/safiri/internal/locations"
	"github.com/yourorg/safiri/internal/models"
	"github.com/yourorg/safiri/internal/rail"
)

// Velocidades promedio (km/h) y tiempo extra del tren por paradas/abordaje
const (
	busSpeedKmh      = 60.0
	trainSpeedKmh    = 50.0
	trainPaddingHour = 1.0

	maxBusOfferings = 4
	trainOfferings  = 2

	frequencyDaily  = "Daily service"
	frequencyWeekly = "3x per week"
)

// Principales operadores de bus de Tanzania, asignados de forma cíclica
var busOperators = []string{
	"Kilimanjaro Express",
	"Dar Express",
	"Tahmeed Coach",
	"Sumry Bus",
	"Royal Coach",
	"Shabiby Bus",
	"Abood Coach",
	"Mtei Express",
}

// LocationLookup resuelve nombres a ubicaciones
type LocationLookup interface {
	Lookup(name string) (locations.Location, bool)
}

// CorridorLookup responde si hay tren entre dos nombres y quién lo opera
type CorridorLookup interface {
	HasCorridor(a, b string) bool
	OperatorFor(a, b string) string
}

// Engine sintetiza ofertas de bus y tren para un par origen-destino.
// No tiene estado mutable: es seguro llamarlo desde múltiples goroutines
// siempre que la RandSource también lo sea.
type Engine struct {
	locations LocationLookup
	corridors CorridorLookup
	rand      RandSource
}

// Option configura el Engine
type Option func(*Engine)

// WithRandSource reemplaza la fuente aleatoria usada para los precios
func WithRandSource(r RandSource) Option {
	return func(e *Engine) {
		if r != nil {
			e.rand = r
		}
	}
}

// NewEngine crea un motor con las tablas dadas
func NewEngine(locs LocationLookup, corridors CorridorLookup, opts ...Option) *Engine {
	e := &Engine{
		locations: locs,
		corridors: corridors,
		rand:      defaultRand,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewDefaultEngine usa el catálogo de Tanzania y los corredores conocidos
func NewDefaultEngine(opts ...Option) *Engine {
	return NewEngine(locations.Default(), rail.Default(), opts...)
}

// BusOfferingCount aplica la política min(4, floor(distancia/100) + 2)
func BusOfferingCount(distanceKm float64) int {
	n := int(math.Floor(distanceKm/100)) + 2
	if n > maxBusOfferings {
		return maxBusOfferings
	}
	return n
}

// Synthesize retorna las ofertas ordenadas por duración, con la primera
// marcada como recomendada. Nombres desconocidos producen una lista vacía.
func (e *Engine) Synthesize(originName, destinationName string) []models.Route {
	routes := []models.Route{}

	origin, ok := e.locations.Lookup(originName)
	if !ok {
		return routes
	}
	destination, ok := e.locations.Lookup(destinationName)
	if !ok {
		return routes
	}

	distance := locations.Distance(origin, destination)
	log.Printf("🧭 [SYNTH] %s -> %s: %.0fkm", originName, destinationName, distance)

	routes = append(routes, e.busOfferings(distance)...)

	if e.corridors.HasCorridor(originName, destinationName) {
		operator := e.corridors.OperatorFor(originName, destinationName)
		routes = append(routes, e.trainOfferings(distance, operator)...)
	}

	sort.SliceStable(routes, func(i, j int) bool {
		return durationSortKey(routes[i].Duration) < durationSortKey(routes[j].Duration)
	})

	if len(routes) > 0 {
		routes[0].Recommended = true
	}

	debug.LogDebug("routes synthesized", map[string]interface{}{
		"origin":      originName,
		"destination": destinationName,
		"distance_km": math.Round(distance),
		"count":       len(routes),
	})

	return routes
}

func (e *Engine) busOfferings(distance float64) []models.Route {
	count := BusOfferingCount(distance)
	departures := departureTimes(count)
	duration := distance / busSpeedKmh

	out := make([]models.Route, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, e.offering(models.ModeBus, busOperators[i%len(busOperators)],
			departures[i], duration, distance, frequencyDaily))
	}
	return out
}

func (e *Engine) trainOfferings(distance float64, operator string) []models.Route {
	duration := distance/trainSpeedKmh + trainPaddingHour

	out := make([]models.Route, 0, trainOfferings)
	for i := 0; i < trainOfferings; i++ {
		freq := frequencyDaily
		if i > 0 {
			freq = frequencyWeekly
		}
		out = append(out, e.offering(models.ModeTrain, operator, trainDepartures[i], duration, distance, freq))
	}
	return out
}

func (e *Engine) offering(mode models.Mode, operator, departure string, duration, distance float64, frequency string) models.Route {
	return models.Route{
		Type:          mode,
		Operator:      operator,
		Duration:      formatDuration(duration),
		Departure:     departure,
		Arrival:       arrivalTime(departure, duration),
		Price:         formatPrice(priceAmount(distance, mode, e.rand)),
		DistanceKm:    int(math.Round(distance)),
		Frequency:     frequency,
		DurationHours: duration,
	}
}
