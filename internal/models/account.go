package models

import (
	"bytes"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/revel8/ledger/internal/history"
)

// Account represents a ledger account. Identity and profile fields are
// immutable after creation. The mutex owns the balance and the outgoing
// transfer history; both are reachable only through methods that hold it.
type Account struct {
	ID    uuid.UUID
	Name  string
	Email string
	Age   int
	City  string

	mu       sync.Mutex
	balance  int64
	outgoing *history.Ring[TransferRecord]
}

// NewAccount creates an account with the given profile, starting balance in
// cents, and outgoing-history capacity.
func NewAccount(id uuid.UUID, name, email string, age int, city string, initialCents int64, historyCapacity int) (*Account, error) {
	outgoing, err := history.New[TransferRecord](historyCapacity)
	if err != nil {
		return nil, err
	}

	return &Account{
		ID:       id,
		Name:     name,
		Email:    email,
		Age:      age,
		City:     city,
		balance:  initialCents,
		outgoing: outgoing,
	}, nil
}

// Balance returns the current balance in cents.
func (a *Account) Balance() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit adds cents to the balance and returns the new balance.
func (a *Account) Deposit(cents int64) int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance += cents
	return a.balance
}

// Withdraw subtracts cents from the balance and returns the new balance.
// The balance is left untouched if it cannot cover the amount.
func (a *Account) Withdraw(cents int64) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.balance < cents {
		return a.balance, ErrInsufficientFunds
	}
	a.balance -= cents
	return a.balance, nil
}

// TransferTo atomically moves cents from a to dst and appends the transfer
// to a's outgoing history. On success it returns the recorded transfer and
// the recipient's resulting balance; on failure neither balance changes.
// The caller must guarantee a and dst are distinct accounts.
//
// Both locks are taken in identifier order regardless of transfer direction,
// so opposing transfers between the same pair of accounts cannot deadlock.
func (a *Account) TransferTo(dst *Account, cents int64) (TransferRecord, int64, error) {
	first, second := a, dst
	if bytes.Compare(dst.ID[:], a.ID[:]) < 0 {
		first, second = dst, a
	}

	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if a.balance < cents {
		return TransferRecord{}, 0, ErrInsufficientFunds
	}

	a.balance -= cents
	dst.balance += cents

	rec := TransferRecord{
		TransferID:            uuid.New(),
		ToAccountID:           dst.ID,
		AmountCents:           cents,
		TimestampMillis:       time.Now().UnixMilli(),
		ResultingBalanceCents: a.balance,
	}
	a.outgoing.Append(rec)

	return rec, dst.balance, nil
}

// OutgoingTransfers returns a snapshot of the account's outgoing transfer
// history, most recent first.
func (a *Account) OutgoingTransfers() []TransferRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.outgoing.RecentNewestFirst()
}
