package handlers

import (
	"context"

	"jan-server/services/vision-chat-api/internal/domain/health"
)

// HealthHandler handles health HTTP requests.
type HealthHandler struct {
	service health.Service
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(service health.Service) *HealthHandler {
	return &HealthHandler{service: service}
}

// Check reports provider connectivity.
func (h *HealthHandler) Check(ctx context.Context) health.Report {
	return h.service.Check(ctx)
}
