// Package handlers implements the HTTP layer over the ledger service.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/revel8/ledger/internal/service"
)

// Handler serves the ledger API endpoints
type Handler struct {
	ledger *service.LedgerService
	logger *slog.Logger
}

// NewHandler creates a new Handler with injected dependencies.
func NewHandler(ledger *service.LedgerService, logger *slog.Logger) *Handler {
	return &Handler{
		ledger: ledger,
		logger: logger,
	}
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
