package debug

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
)

// WebSocketHub maneja las conexiones WebSocket del dashboard de debugging
type WebSocketHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.RWMutex
}

var (
	Hub *WebSocketHub
)

func init() {
	Hub = &WebSocketHub{
		broadcast:  make(chan []byte, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		clients:    make(map[*websocket.Conn]bool),
	}
	go Hub.run()
}

func (h *WebSocketHub) run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("🔌 Dashboard conectado. Total clientes: %d", total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
			}
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("🔌 Dashboard desconectado. Total clientes: %d", total)

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
					log.Printf("Error enviando mensaje al dashboard: %v", err)
					client.Close()
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// ClientCount retorna la cantidad de dashboards conectados
func (h *WebSocketHub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *WebSocketHub) hasClients() bool {
	return h.ClientCount() > 0
}

// publish serializa y encola un mensaje; si el canal está lleno se descarta
func (h *WebSocketHub) publish(msg interface{}) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error al serializar mensaje para dashboard: %v", err)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		// Canal lleno, saltar mensaje
	}
}

// HandleWebSocketFiber maneja las conexiones WebSocket de Fiber
func HandleWebSocketFiber(conn *websocket.Conn) {
	Hub.register <- conn

	// Leer mensajes del cliente (para comandos futuros)
	defer func() {
		Hub.unregister <- conn
	}()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}

// LogMessage representa un mensaje de log para el dashboard
type LogMessage struct {
	Type     string                 `json:"type"`
	Source   string                 `json:"source"`
	Level    string                 `json:"level"`
	Message  string                 `json:"message"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// SendLog envía un log al dashboard
func SendLog(source, level, message string, metadata map[string]interface{}) {
	if !Hub.hasClients() {
		return // No hay clientes conectados
	}

	Hub.publish(LogMessage{
		Type:     "log",
		Source:   source,
		Level:    level,
		Message:  message,
		Metadata: metadata,
	})
}

// MetricsMessage representa métricas del sistema
type MetricsMessage struct {
	Type    string   `json:"type"`
	Metrics []Metric `json:"metrics"`
}

type Metric struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
	Unit  string      `json:"unit,omitempty"`
	Trend string      `json:"trend,omitempty"`
}

// SendMetrics envía métricas al dashboard
func SendMetrics(metrics []Metric) {
	if !Hub.hasClients() {
		return
	}

	Hub.publish(MetricsMessage{
		Type:    "metrics",
		Metrics: metrics,
	})
}

// ApiStatusMessage representa el estado de los servicios
type ApiStatusMessage struct {
	Type   string    `json:"type"`
	Status ApiStatus `json:"status"`
}

type ApiStatus struct {
	Backend struct {
		Status  string `json:"status"`
		Uptime  int64  `json:"uptime"`
		Version string `json:"version"`
	} `json:"backend"`
	Enrichment struct {
		Status string `json:"status"`
	} `json:"enrichment"`
	Database struct {
		Status string `json:"status"`
	} `json:"database"`
}

var startTime = time.Now()

// SendApiStatus envía el estado de los servicios al dashboard
func SendApiStatus(status ApiStatus) {
	if !Hub.hasClients() {
		return
	}

	status.Backend.Uptime = int64(time.Since(startTime).Seconds())

	Hub.publish(ApiStatusMessage{
		Type:   "api_status",
		Status: status,
	})
}

// EnrichmentStatusMessage representa el estado del enriquecimiento externo
type EnrichmentStatusMessage struct {
	Type   string           `json:"type"`
	Status EnrichmentStatus `json:"status"`
}

type EnrichmentStatus struct {
	Provider       string `json:"provider"`
	LastRun        int64  `json:"lastRun"`
	Status         string `json:"status"`
	ItemsProcessed int    `json:"itemsProcessed"`
	Errors         int    `json:"errors"`
}

// SendEnrichmentStatus envía el estado del enriquecimiento al dashboard
func SendEnrichmentStatus(status EnrichmentStatus) {
	if !Hub.hasClients() {
		return
	}

	Hub.publish(EnrichmentStatusMessage{
		Type:   "enrichment_status",
		Status: status,
	})
}
