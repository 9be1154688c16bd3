package handler

import (
	"log/slog"
	"net/http"

	"ripple/internal/httputil"
	"ripple/internal/reactions"
)

// ReactionsHandler exposes the configured reaction kinds
type ReactionsHandler struct {
	registry *reactions.Registry
	logger   *slog.Logger
}

// NewReactionsHandler creates a new reactions handler
func NewReactionsHandler(registry *reactions.Registry, logger *slog.Logger) *ReactionsHandler {
	return &ReactionsHandler{
		registry: registry,
		logger:   logger,
	}
}

// ListKinds returns all reaction kinds clients may use
// GET /api/reactions/kinds
func (h *ReactionsHandler) ListKinds(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"kinds": h.registry.List(),
	})
}
