// Package models defines the ledger's domain entities.
package models

import "github.com/google/uuid"

// TransferRecord is one completed outgoing transfer as kept in the sender's
// history. Immutable once created. Only the sender's resulting balance is
// retained; the recipient's balance at transfer time is not stored.
type TransferRecord struct {
	TransferID            uuid.UUID
	ToAccountID           uuid.UUID
	AmountCents           int64
	TimestampMillis       int64
	ResultingBalanceCents int64
}
