package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/yourorg/safiri/internal/models"
)

const shareLinkPrefix = "safiri://search/"

// ShareClaims es el contenido de un token de búsqueda compartida.
// No se persiste nada: el token lleva origen y destino firmados.
type ShareClaims struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	jwt.RegisteredClaims
}

// ShareHandler crea y resuelve links de búsqueda compartida
type ShareHandler struct {
	search *SearchHandler
}

// NewShareHandler crea el handler sobre el de búsqueda
func NewShareHandler(search *SearchHandler) *ShareHandler {
	return &ShareHandler{search: search}
}

// CreateShare firma una búsqueda para compartirla
// POST /api/routes/share  {"origin": "...", "destination": "..."}
func (h *ShareHandler) CreateShare(c *fiber.Ctx) error {
	var req models.SearchShareRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	if err := validateEndpoints(req.Origin, req.Destination); err != nil {
		return badParams(c, err)
	}

	resp, err := issueShareToken(req.Origin, req.Destination, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Failed to create share link",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ResolveShare valida el token y vuelve a ejecutar la búsqueda
// GET /api/routes/shared/:token
func (h *ShareHandler) ResolveShare(c *fiber.Ctx) error {
	claims, err := parseShareToken(c.Params("token"))
	if err != nil {
		status := fiber.StatusBadRequest
		msg := "Invalid share token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			status = fiber.StatusGone
			msg = "Share link expired"
		}
		return c.Status(status).JSON(models.ErrorResponse{Error: msg})
	}

	return c.JSON(h.search.Search(c.UserContext(), claims.Origin, claims.Destination, false))
}

func issueShareToken(origin, destination string, now time.Time) (models.SearchShareResponse, error) {
	secret, ttl := getShareConfig()

	shareID := uuid.NewString()
	expiresAt := now.Add(ttl)

	claims := ShareClaims{
		Origin:      origin,
		Destination: destination,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        shareID,
			Subject:   "search",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return models.SearchShareResponse{}, fmt.Errorf("sign share token: %w", err)
	}

	return models.SearchShareResponse{
		ShareID:   shareID,
		Token:     signed,
		ShareURL:  shareLinkPrefix + signed,
		ExpiresAt: expiresAt,
	}, nil
}

func parseShareToken(raw string) (*ShareClaims, error) {
	secret, _ := getShareConfig()

	claims := &ShareClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("parse share token: %w", err)
	}

	if err := validateEndpoints(claims.Origin, claims.Destination); err != nil {
		return nil, fmt.Errorf("share token payload: %w", err)
	}
	return claims, nil
}
