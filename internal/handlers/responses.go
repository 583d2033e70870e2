package handlers

import (
	"time"

	"github.com/revel8/ledger/internal/models"
	"github.com/revel8/ledger/internal/money"
	"github.com/revel8/ledger/internal/service"
)

type accountResponse struct {
	AccountID string `json:"accountId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	City      string `json:"city"`
	Balance   string `json:"balance"`
}

type balanceResponse struct {
	Balance string `json:"balance"`
}

type transferResponse struct {
	TransferID       string `json:"transferId"`
	ToAccountID      string `json:"toAccountId"`
	Amount           string `json:"amount"`
	TimestampMillis  int64  `json:"timestampMillis"`
	ResultingBalance string `json:"resultingBalance"`
	// RecipientBalance is only known at transfer time; listings of
	// historical transfers omit it.
	RecipientBalance string `json:"recipientBalance,omitempty"`
}

type outgoingTransfersResponse struct {
	Transfers []transferResponse `json:"transfers"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
}

func newErrorResponse(message string) errorResponse {
	return errorResponse{Error: message, Timestamp: time.Now().UnixMilli()}
}

func toAccountResponse(account *models.Account) accountResponse {
	return accountResponse{
		AccountID: account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		Age:       account.Age,
		City:      account.City,
		Balance:   money.Format(account.Balance()),
	}
}

func toTransferResponse(result *service.TransferResult) transferResponse {
	return transferResponse{
		TransferID:       result.TransferID.String(),
		ToAccountID:      result.ToAccountID.String(),
		Amount:           money.Format(result.AmountCents),
		TimestampMillis:  result.TimestampMillis,
		ResultingBalance: money.Format(result.SenderBalanceCents),
		RecipientBalance: money.Format(result.RecipientBalanceCents),
	}
}

func toHistoricalTransferResponse(rec models.TransferRecord) transferResponse {
	return transferResponse{
		TransferID:       rec.TransferID.String(),
		ToAccountID:      rec.ToAccountID.String(),
		Amount:           money.Format(rec.AmountCents),
		TimestampMillis:  rec.TimestampMillis,
		ResultingBalance: money.Format(rec.ResultingBalanceCents),
	}
}
