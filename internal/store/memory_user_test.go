package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

func TestMemoryUserRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryUserRepository(logger.Nop())
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, models.User{ID: "ignored", FullName: "Alice", Email: "a@x.io", PasswordHash: "digest"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "ignored", created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	byEmail, err := repo.FindUserByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, created, byEmail)

	byID, err := repo.FindUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)
}

func TestMemoryUserRepository_ExactEmailMatch(t *testing.T) {
	repo := NewMemoryUserRepository(logger.Nop())
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, models.User{Email: "a@x.io"})
	require.NoError(t, err)

	_, err = repo.FindUserByEmail(ctx, "A@x.io")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestMemoryUserRepository_Missing(t *testing.T) {
	repo := NewMemoryUserRepository(logger.Nop())

	_, err := repo.FindUserByEmail(context.Background(), "nobody@x.io")
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	_, err = repo.FindUserByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestMemoryUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewMemoryUserRepository(logger.Nop())
	ctx := context.Background()

	first, err := repo.CreateUser(ctx, models.User{FullName: "Alice", Email: "a@x.io"})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, models.User{FullName: "Mallory", Email: "a@x.io"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	stored, err := repo.FindUserByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, first, stored)
}

func TestMemoryUserRepository_ConcurrentCreateSameEmail(t *testing.T) {
	repo := NewMemoryUserRepository(logger.Nop())
	ctx := context.Background()

	const workers = 32
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)

	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateUser(ctx, models.User{FullName: fmt.Sprintf("user-%d", i), Email: "race@x.io"})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}
