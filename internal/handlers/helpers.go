package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/revel8/ledger/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, newErrorResponse(message))
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func parsePathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid account id: %w", err)
	}
	return id, nil
}

// writeServiceError maps a ledger service failure to an HTTP response.
// Anything other than a known business error becomes an opaque 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var svcErr *service.ServiceError
	if !errors.As(err, &svcErr) {
		h.logger.Error("unexpected error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch svcErr.Code {
	case service.ErrCodeInvalidAmount, service.ErrCodeInvalidTransfer:
		writeError(w, http.StatusBadRequest, svcErr.Message)
	case service.ErrCodeAccountNotFound:
		writeError(w, http.StatusNotFound, svcErr.Message)
	case service.ErrCodeInsufficientFunds:
		writeError(w, http.StatusConflict, svcErr.Message)
	default:
		h.logger.Error("unexpected service error", "code", svcErr.Code, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
