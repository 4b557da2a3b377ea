package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Hospital-api/internal/application/inventory"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/pkg/config"
	"github.com/jhoicas/Hospital-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requiere una base desechable: HNSM_TEST_DATABASE_URL=postgres://... go test ./internal/infrastructure/postgres
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("HNSM_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("HNSM_TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	require.NoError(t, Migrate(ctx, dsn))
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestLedger_Postgres(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	items := NewInventoryItemRepository(pool)
	movs := NewInventoryMovementRepository(pool)

	now := time.Now().UTC()
	item := &entity.InventoryItem{
		ID: uuid.New().String(), Name: "Paracétamol " + uuid.NewString()[:8], Category: entity.CategoryMedication,
		CurrentStock: 10, MinimumStock: 5, Unit: "boxes", CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, items.Create(ctx, item))

	ledger := inventory.NewLedgerUseCase(NewTxRunner(pool), items, movs, nil, nil, logger.Nop())
	_, got, err := ledger.RecordMovement(ctx, inventory.MovementInput{ItemID: item.ID, Type: entity.MovementTypeOUT, Quantity: 8})
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentStock)

	_, _, err = ledger.RecordMovement(ctx, inventory.MovementInput{ItemID: item.ID, Type: entity.MovementTypeOUT, Quantity: 5})
	require.NoError(t, err)

	stored, err := items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.CurrentStock)

	list, err := movs.ListByItem(ctx, item.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 0, list[0].NewStock)
	assert.Equal(t, 2, list[0].PreviousStock)
}

func TestPatientSearch_Postgres(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewPatientRepository(pool)
	marker := uuid.NewString()[:6]
	now := time.Now().UTC()
	p := &entity.Patient{
		ID: uuid.New().String(), FirstName: "José", LastName: "Gomes" + marker,
		DateOfBirth: "1980-01-02", Gender: entity.GenderMale, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, p))

	found, err := repo.Search(ctx, "gomes"+marker, 10, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "1980-01-02", found[0].DateOfBirth)

	got, err := repo.GetByID(ctx, "no-es-uuid")
	require.NoError(t, err)
	assert.Nil(t, got)
}
