package handlers

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	minAge = 18
	maxAge = 150
)

type createAccountRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Age            *int   `json:"age"`
	City           string `json:"city"`
	InitialDeposit string `json:"initialDeposit"`
}

func (r *createAccountRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name: is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email: is required")
	}
	if !emailPattern.MatchString(r.Email) {
		return fmt.Errorf("email: invalid email format")
	}
	if r.Age == nil {
		return fmt.Errorf("age: is required")
	}
	if *r.Age < minAge {
		return fmt.Errorf("age: must be at least %d", minAge)
	}
	if *r.Age > maxAge {
		return fmt.Errorf("age: invalid age")
	}
	if strings.TrimSpace(r.City) == "" {
		return fmt.Errorf("city: is required")
	}
	if strings.TrimSpace(r.InitialDeposit) == "" {
		return fmt.Errorf("initialDeposit: is required")
	}
	return nil
}

type amountRequest struct {
	Amount string `json:"amount"`
}

func (r *amountRequest) validate() error {
	if strings.TrimSpace(r.Amount) == "" {
		return fmt.Errorf("amount: is required")
	}
	return nil
}

type transferRequest struct {
	FromAccountID string `json:"fromAccountId"`
	ToAccountID   string `json:"toAccountId"`
	Amount        string `json:"amount"`
}

func (r *transferRequest) validate() error {
	if strings.TrimSpace(r.FromAccountID) == "" {
		return fmt.Errorf("fromAccountId: is required")
	}
	if strings.TrimSpace(r.ToAccountID) == "" {
		return fmt.Errorf("toAccountId: is required")
	}
	if strings.TrimSpace(r.Amount) == "" {
		return fmt.Errorf("amount: is required")
	}
	return nil
}
