package repository

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndFindByID(t *testing.T) {
	repo := NewAccountRepository(50)

	account, err := repo.Create("Alice", "alice@example.com", 30, "Berlin", 10000)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.Equal(t, "Alice", account.Name)
	assert.Equal(t, "alice@example.com", account.Email)
	assert.Equal(t, 30, account.Age)
	assert.Equal(t, "Berlin", account.City)
	assert.Equal(t, int64(10000), account.Balance())

	found, err := repo.FindByID(account.ID)
	require.NoError(t, err)
	assert.Same(t, account, found)
}

func TestFindByIDUnknownAccount(t *testing.T) {
	repo := NewAccountRepository(50)

	_, err := repo.FindByID(uuid.New())
	assert.Error(t, err)
}

func TestCreateGeneratesUniqueIDs(t *testing.T) {
	repo := NewAccountRepository(50)

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 100; i++ {
		account, err := repo.Create("Alice", "alice@example.com", 30, "Berlin", 0)
		require.NoError(t, err)
		assert.False(t, seen[account.ID])
		seen[account.ID] = true
	}
}

func TestCreateRejectsBadHistoryCapacity(t *testing.T) {
	repo := NewAccountRepository(0)

	_, err := repo.Create("Alice", "alice@example.com", 30, "Berlin", 0)
	assert.Error(t, err)
}

func TestListSnapshotsAllAccounts(t *testing.T) {
	repo := NewAccountRepository(50)

	a, err := repo.Create("Alice", "alice@example.com", 30, "Berlin", 100)
	require.NoError(t, err)
	b, err := repo.Create("Bob", "bob@example.com", 40, "Hamburg", 200)
	require.NoError(t, err)

	all := repo.List()
	require.Len(t, all, 2)

	ids := []uuid.UUID{all[0].ID, all[1].ID}
	assert.Contains(t, ids, a.ID)
	assert.Contains(t, ids, b.ID)
}

func TestConcurrentCreates(t *testing.T) {
	repo := NewAccountRepository(50)

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := repo.Create("Alice", "alice@example.com", 30, "Berlin", 0); err != nil {
				t.Errorf("create failed: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, repo.List(), workers)
}
