package http

import (
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// cookieName is the name of the cookie carrying the opaque session token.
	cookieName string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cookieName string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		cookieName: cookieName,
		logger:     logger,
	}
}
