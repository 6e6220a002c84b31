package http

import (
	"time"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
)

// Handler serves the REST API on top of [service.Services].
type Handler struct {
	services       *service.Services
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler returns a Handler. A positive requestTimeout bounds every
// request handled by the router returned from [Handler.Init].
func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
