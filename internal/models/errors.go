package models

import "errors"

// Domain errors that can be returned by accounts and the account store
var (
	// ErrInsufficientFunds indicates a debit larger than the current balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNotFound indicates the requested account was not found
	ErrNotFound = errors.New("account not found")
)
