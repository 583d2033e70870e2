// Package repository provides the in-memory account store shared by all
// ledger operations.
package repository

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/revel8/ledger/internal/models"
)

// maxIDAttempts bounds identifier regeneration on the astronomically
// unlikely uuid collision during account creation.
const maxIDAttempts = 5

// AccountRepository defines the interface for account storage
type AccountRepository interface {
	Create(name, email string, age int, city string, initialCents int64) (*models.Account, error)
	FindByID(id uuid.UUID) (*models.Account, error)
	List() []*models.Account
}

// accountRepository implements AccountRepository on a concurrent map.
// Accounts are insert-only: there is no delete and identifiers are never
// reused.
type accountRepository struct {
	accounts        sync.Map // uuid.UUID -> *models.Account
	historyCapacity int
}

// NewAccountRepository creates an empty AccountRepository whose accounts
// keep up to historyCapacity outgoing transfers each.
func NewAccountRepository(historyCapacity int) AccountRepository {
	return &accountRepository{historyCapacity: historyCapacity}
}

// Create builds an account under a freshly generated identifier and inserts
// it. An identifier collision regenerates and retries rather than overwrite
// an existing account.
func (r *accountRepository) Create(name, email string, age int, city string, initialCents int64) (*models.Account, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := uuid.New()
		account, err := models.NewAccount(id, name, email, age, city, initialCents, r.historyCapacity)
		if err != nil {
			return nil, err
		}

		if _, loaded := r.accounts.LoadOrStore(id, account); !loaded {
			return account, nil
		}
	}

	return nil, fmt.Errorf("failed to allocate a unique account id after %d attempts", maxIDAttempts)
}

// FindByID retrieves an account by its identifier. The lookup never blocks
// on any account's lock.
func (r *accountRepository) FindByID(id uuid.UUID) (*models.Account, error) {
	v, ok := r.accounts.Load(id)
	if !ok {
		return nil, models.ErrNotFound
	}
	return v.(*models.Account), nil
}

// List returns a snapshot of the current accounts. Creations concurrent
// with the walk may or may not be observed.
func (r *accountRepository) List() []*models.Account {
	var out []*models.Account
	r.accounts.Range(func(_, v any) bool {
		out = append(out, v.(*models.Account))
		return true
	})
	return out
}
