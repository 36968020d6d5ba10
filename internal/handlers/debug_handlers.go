package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yourorg/safiri/internal/debug"
	"github.com/yourorg/safiri/internal/models"
)

// DebugLogRequest representa un log enviado desde un cliente (web o CLI)
type DebugLogRequest struct {
	Source   string                 `json:"source"` // "frontend" por defecto
	Level    string                 `json:"level"`  // debug, info, warn, error
	Message  string                 `json:"message"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// DebugErrorRequest representa un error capturado en un cliente
type DebugErrorRequest struct {
	ErrorType  string                 `json:"errorType"` // runtime_error, network_error, etc.
	Message    string                 `json:"message"`
	StackTrace string                 `json:"stackTrace,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// ReceiveClientLog recibe logs de clientes y los reenvía al dashboard
// POST /api/debug/log
func ReceiveClientLog(c *fiber.Ctx) error {
	if !debug.IsEnabled() {
		return c.JSON(fiber.Map{"status": "disabled"})
	}

	var req DebugLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "message is required",
		})
	}

	if !validLevels[req.Level] {
		req.Level = "info"
	}
	if req.Source == "" {
		req.Source = "frontend"
	}
	if req.Metadata == nil {
		req.Metadata = make(map[string]interface{})
	}
	req.Metadata["ip"] = c.IP()

	debug.SendLog(req.Source, req.Level, req.Message, req.Metadata)

	return c.JSON(fiber.Map{"status": "ok"})
}

// ReceiveClientError recibe errores de clientes
// POST /api/debug/error
func ReceiveClientError(c *fiber.Ctx) error {
	if !debug.IsEnabled() {
		return c.JSON(fiber.Map{"status": "disabled"})
	}

	var req DebugErrorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	if req.Metadata == nil {
		req.Metadata = make(map[string]interface{})
	}
	req.Metadata["errorType"] = req.ErrorType
	if req.StackTrace != "" {
		req.Metadata["stackTrace"] = req.StackTrace
	}

	message := "[" + req.ErrorType + "] " + req.Message
	debug.SendLog("frontend", "error", message, req.Metadata)

	return c.JSON(fiber.Map{"status": "ok"})
}
