package models

import "time"

// SearchShareRequest representa la solicitud para compartir una búsqueda
type SearchShareRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// SearchShareResponse contiene el token firmado y el link para compartir
type SearchShareResponse struct {
	ShareID   string    `json:"share_id"`
	Token     string    `json:"token"`
	ShareURL  string    `json:"share_url"`
	ExpiresAt time.Time `json:"expires_at"`
}
