package models

// Mode es el tipo de transporte de una oferta
type Mode string

const (
	ModeBus   Mode = "bus"
	ModeTrain Mode = "train"
)

// Route representa una oferta de viaje (bus o tren) retornada al cliente
type Route struct {
	Type          Mode     `json:"type"`
	Operator      string   `json:"operator"`
	Duration      string   `json:"duration"`  // "<H>h <M>m"
	Departure     string   `json:"departure"` // HH:MM
	Arrival       string   `json:"arrival"`   // HH:MM, puede pasar la medianoche
	Price         string   `json:"price"`     // "TZS 12,000"
	DistanceKm    int      `json:"distance_km,omitempty"`
	Frequency     string   `json:"frequency,omitempty"`
	Stops         []string `json:"stops,omitempty"` // Paradas intermedias (no usado por el motor actual)
	Recommended   bool     `json:"recommended,omitempty"`
	DurationHours float64  `json:"-"`
}

// ScrapedRoute representa los datos obtenidos del enriquecimiento externo.
// Todos los campos son opcionales.
type ScrapedRoute struct {
	Operator  string `json:"operator,omitempty"`
	Departure string `json:"departure,omitempty"`
	Arrival   string `json:"arrival,omitempty"`
	Price     string `json:"price,omitempty"`
	Frequency string `json:"frequency,omitempty"`
}

// SearchRequest es el cuerpo de POST /api/routes/search
type SearchRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Enrich      bool   `json:"enrich,omitempty"`
}

// SearchResponse es la respuesta de una búsqueda
type SearchResponse struct {
	SearchID    string  `json:"search_id"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Count       int     `json:"count"`
	Enriched    bool    `json:"enriched"`
	Routes      []Route `json:"routes"`
}

// EnrichRequest es el cuerpo de POST /api/routes/enrich
type EnrichRequest struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Routes      []Route `json:"routes"`
}
