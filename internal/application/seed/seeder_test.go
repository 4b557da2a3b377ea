package seed

import (
	"context"
	"testing"

	"github.com/jhoicas/Hospital-api/internal/infrastructure/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newSeeder() (*Seeder, *memory.Store) {
	store := memory.NewStore()
	s := NewSeeder(memory.NewUserRepository(store), memory.NewPatientRepository(store),
		memory.NewInventoryItemRepository(store), zerolog.Nop())
	s.bcryptCost = bcrypt.MinCost
	return s, store
}

func TestRun_DefaultAccounts(t *testing.T) {
	s, store := newSeeder()
	ctx := context.Background()

	res, err := s.Run(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, Result{Users: 2}, res)

	u, err := memory.NewUserRepository(store).GetByUsername(ctx, "dr.santos")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Cardiologie", u.Department)
	assert.True(t, u.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(DefaultPassword)))
}

func TestRun_Idempotent(t *testing.T) {
	s, _ := newSeeder()
	ctx := context.Background()

	first, err := s.Run(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Users)
	assert.Equal(t, 3, first.Patients)
	assert.Equal(t, 4, first.Items)

	second, err := s.Run(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, Result{}, second)
}
