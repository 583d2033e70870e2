package handlers

import (
	"log/slog"
	"net/http"

	"github.com/revel8/ledger/internal/middleware"
	"github.com/revel8/ledger/internal/service"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(ledger *service.LedgerService, logger *slog.Logger) http.Handler {
	h := NewHandler(ledger, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("POST /api/accounts", h.CreateAccount)
	mux.HandleFunc("GET /api/accounts", h.ListAccounts)
	mux.HandleFunc("POST /api/accounts/{id}/deposit", h.Deposit)
	mux.HandleFunc("POST /api/accounts/{id}/withdraw", h.Withdraw)
	mux.HandleFunc("POST /api/transfers", h.Transfer)
	mux.HandleFunc("GET /api/accounts/{id}/outgoing-transfers", h.OutgoingTransfers)

	var finalHandler http.Handler = mux
	finalHandler = middleware.RequestLogger(logger)(finalHandler)
	finalHandler = middleware.Recover(logger)(finalHandler)

	return finalHandler
}
