package handlers

import (
	"net/http"

	"github.com/google/uuid"
)

// Transfer handles POST /api/transfers
func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fromID, err := uuid.Parse(req.FromAccountID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "fromAccountId: invalid account id")
		return
	}
	toID, err := uuid.Parse(req.ToAccountID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "toAccountId: invalid account id")
		return
	}

	result, err := h.ledger.Transfer(fromID, toID, req.Amount)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.logger.Info("transfer committed",
		"transfer_id", result.TransferID,
		"from", fromID,
		"to", toID,
		"amount_cents", result.AmountCents,
	)
	writeJSON(w, http.StatusOK, toTransferResponse(result))
}

// OutgoingTransfers handles GET /api/accounts/{id}/outgoing-transfers
func (h *Handler) OutgoingTransfers(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.ledger.OutgoingTransfers(id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	out := outgoingTransfersResponse{Transfers: make([]transferResponse, 0, len(records))}
	for _, rec := range records {
		out.Transfers = append(out.Transfers, toHistoricalTransferResponse(rec))
	}
	writeJSON(w, http.StatusOK, out)
}
