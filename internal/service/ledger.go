// Package service implements the ledger operations over the account store.
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/revel8/ledger/internal/models"
	"github.com/revel8/ledger/internal/money"
	"github.com/revel8/ledger/internal/repository"
)

// TransferResult describes a committed transfer, including the recipient's
// resulting balance, which is reported once but never stored in history.
type TransferResult struct {
	TransferID            uuid.UUID
	ToAccountID           uuid.UUID
	AmountCents           int64
	TimestampMillis       int64
	SenderBalanceCents    int64
	RecipientBalanceCents int64
}

// LedgerService orchestrates account creation, deposits, withdrawals and
// transfers over the account store. All monetary text inputs are validated
// here regardless of upstream checks.
type LedgerService struct {
	accounts repository.AccountRepository
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(accounts repository.AccountRepository) *LedgerService {
	return &LedgerService{accounts: accounts}
}

// CreateAccount parses the initial deposit and registers a new account.
// The account is not visible to other operations until insertion completes,
// so no lock is taken.
func (s *LedgerService) CreateAccount(name, email string, age int, city, initialDeposit string) (*models.Account, error) {
	cents, err := money.Parse(initialDeposit)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: "invalid amount format",
			Err:     err,
		}
	}
	if cents < 0 {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: "initial deposit cannot be negative",
		}
	}

	account, err := s.accounts.Create(name, email, age, city, cents)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to create account",
			Err:     err,
		}
	}

	return account, nil
}

// Deposit credits the account and returns the new balance in cents.
func (s *LedgerService) Deposit(accountID uuid.UUID, amount string) (int64, error) {
	cents, err := s.parsePositiveAmount(amount, "deposit")
	if err != nil {
		return 0, err
	}

	account, err := s.accounts.FindByID(accountID)
	if err != nil {
		return 0, notFoundError("account", accountID, err)
	}

	return account.Deposit(cents), nil
}

// Withdraw debits the account and returns the new balance in cents. The
// balance never goes negative; an uncovered debit fails without effect.
func (s *LedgerService) Withdraw(accountID uuid.UUID, amount string) (int64, error) {
	cents, err := s.parsePositiveAmount(amount, "withdrawal")
	if err != nil {
		return 0, err
	}

	account, err := s.accounts.FindByID(accountID)
	if err != nil {
		return 0, notFoundError("account", accountID, err)
	}

	balance, err := account.Withdraw(cents)
	if err != nil {
		return 0, &ServiceError{
			Code:    ErrCodeInsufficientFunds,
			Message: "insufficient funds for withdrawal",
			Err:     err,
		}
	}

	return balance, nil
}

// Transfer moves an amount between two distinct accounts, recording the
// transfer in the sender's history. Either every effect commits or none.
func (s *LedgerService) Transfer(fromID, toID uuid.UUID, amount string) (*TransferResult, error) {
	cents, err := s.parsePositiveAmount(amount, "transfer")
	if err != nil {
		return nil, err
	}
	if fromID == toID {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidTransfer,
			Message: "cannot transfer to the same account",
		}
	}

	src, err := s.accounts.FindByID(fromID)
	if err != nil {
		return nil, notFoundError("source account", fromID, err)
	}
	dst, err := s.accounts.FindByID(toID)
	if err != nil {
		return nil, notFoundError("destination account", toID, err)
	}

	rec, recipientBalance, err := src.TransferTo(dst, cents)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInsufficientFunds,
			Message: "insufficient funds for transfer",
			Err:     err,
		}
	}

	return &TransferResult{
		TransferID:            rec.TransferID,
		ToAccountID:           rec.ToAccountID,
		AmountCents:           rec.AmountCents,
		TimestampMillis:       rec.TimestampMillis,
		SenderBalanceCents:    rec.ResultingBalanceCents,
		RecipientBalanceCents: recipientBalance,
	}, nil
}

// OutgoingTransfers returns the account's recorded transfers, most recent
// first.
func (s *LedgerService) OutgoingTransfers(accountID uuid.UUID) ([]models.TransferRecord, error) {
	account, err := s.accounts.FindByID(accountID)
	if err != nil {
		return nil, notFoundError("account", accountID, err)
	}

	return account.OutgoingTransfers(), nil
}

// ListAccounts returns a snapshot of all accounts.
func (s *LedgerService) ListAccounts() []*models.Account {
	return s.accounts.List()
}

func (s *LedgerService) parsePositiveAmount(amount, operation string) (int64, error) {
	cents, err := money.Parse(amount)
	if err != nil {
		return 0, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: "invalid amount format",
			Err:     err,
		}
	}
	if cents <= 0 {
		return 0, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: fmt.Sprintf("%s amount must be positive", operation),
		}
	}
	return cents, nil
}

func notFoundError(what string, id uuid.UUID, err error) error {
	if !errors.Is(err, models.ErrNotFound) {
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "internal error",
			Err:     err,
		}
	}
	return &ServiceError{
		Code:    ErrCodeAccountNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, id),
		Err:     err,
	}
}
