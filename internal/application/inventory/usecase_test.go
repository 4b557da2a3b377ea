package inventory

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/jhoicas/Hospital-api/internal/application/activity"
	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	ledger *LedgerUseCase
	items  *ItemUseCase
	movs   *memory.MovementRepo
	feed   *memory.ActivityFeed
}

func newFixture() fixture {
	store := memory.NewStore()
	itemRepo := memory.NewInventoryItemRepository(store)
	movRepo := memory.NewInventoryMovementRepository(store)
	feed := memory.NewActivityFeed(50)
	return fixture{
		ledger: NewLedgerUseCase(memory.NewTxRunner(store), itemRepo, movRepo, activity.NewRecorder(feed, nil), nil, nil),
		items:  NewItemUseCase(itemRepo, time.UTC),
		movs:   movRepo,
		feed:   feed,
	}
}

func (f fixture) createItem(t *testing.T, stock, minimum int) string {
	t.Helper()
	resp, err := f.items.Create(context.Background(), dto.CreateInventoryItemRequest{
		Name:         "Paracétamol 500mg",
		Category:     entity.CategoryMedication,
		CurrentStock: stock,
		MinimumStock: minimum,
		Unit:         "boxes",
	})
	require.NoError(t, err)
	return resp.ID
}

func TestRecordMovement_LowStockScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	id := f.createItem(t, 10, 5)

	_, item, err := f.ledger.RecordMovement(ctx, MovementInput{UserID: "u1", ItemID: id, Type: entity.MovementTypeOUT, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 7, item.CurrentStock)

	low, err := f.ledger.ListLowStock(ctx)
	require.NoError(t, err)
	assert.Empty(t, low)

	_, item, err = f.ledger.RecordMovement(ctx, MovementInput{UserID: "u1", ItemID: id, Type: entity.MovementTypeOUT, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 2, item.CurrentStock)

	low, err = f.ledger.ListLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, id, low[0].ID)
	assert.True(t, low[0].LowStock)

	mov, item, err := f.ledger.RecordMovement(ctx, MovementInput{UserID: "u1", ItemID: id, Type: entity.MovementTypeOUT, Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, item.CurrentStock)
	assert.Equal(t, 2, mov.PreviousStock)
	assert.Equal(t, 0, mov.NewStock)

	history, err := f.ledger.ListMovements(ctx, id, 20, 0)
	require.NoError(t, err)
	require.Len(t, history.Items, 3)
	assert.Equal(t, 10, history.Items[0].Quantity) // más reciente primero
}

func TestRecordMovement_UnknownItem(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, _, err := f.ledger.RecordMovement(ctx, MovementInput{ItemID: "missing", Type: entity.MovementTypeIN, Quantity: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	history, err := f.movs.ListByItem(ctx, "missing", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
	recent, _ := f.feed.Recent(ctx, 10)
	assert.Empty(t, recent)
}

func TestRecordMovement_InvalidInput(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	id := f.createItem(t, 10, 5)

	cases := []MovementInput{
		{ItemID: id, Type: entity.MovementTypeIN, Quantity: 0},
		{ItemID: id, Type: entity.MovementTypeOUT, Quantity: -2},
		{ItemID: id, Type: entity.MovementTypeADJUSTMENT, Quantity: 0},
		{ItemID: id, Type: "transfer", Quantity: 1},
		{Type: entity.MovementTypeIN, Quantity: 1},
		{ItemID: id, Type: entity.MovementTypeIN, Quantity: math.MaxInt},
	}
	for _, in := range cases {
		_, _, err := f.ledger.RecordMovement(ctx, in)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "%+v", in)
	}

	got, err := f.items.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 10, got.CurrentStock)
}

func TestRecordMovementFromRequest(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	id := f.createItem(t, 4, 5)

	resp, err := f.ledger.RecordMovementFromRequest(ctx, "u1", dto.RecordMovementRequest{ItemID: id, Type: "adjustment", Quantity: -1, Reason: "inventaire"})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Item.CurrentStock)
	assert.Equal(t, "u1", resp.Movement.UserID)
	assert.True(t, resp.Item.LowStock)

	_, err = f.ledger.RecordMovementFromRequest(ctx, "u1", dto.RecordMovementRequest{ItemID: id, Type: "loss", Quantity: 1})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	recent, _ := f.feed.Recent(ctx, 10)
	require.Len(t, recent, 1)
	assert.Equal(t, entity.ActivityMovementRecorded, recent[0].Kind)
}

func TestRecordMovement_ConcurrentMovementsSerialize(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	id := f.createItem(t, 100, 5)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			typ := entity.MovementTypeIN
			if i%2 == 0 {
				typ = entity.MovementTypeOUT
			}
			_, _, err := f.ledger.RecordMovement(ctx, MovementInput{ItemID: id, Type: typ, Quantity: 1})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := f.items.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 100, got.CurrentStock)

	history, err := f.movs.ListByItem(ctx, id, 100, 0)
	require.NoError(t, err)
	assert.Len(t, history, 50)
	// Cada movimiento parte del stock que dejó el anterior.
	for i := 0; i < len(history)-1; i++ {
		assert.Equal(t, history[i+1].NewStock, history[i].PreviousStock)
	}
}

func TestRecordMovement_StockIsLeftFoldOfMovements(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	id := f.createItem(t, 5, 3)
	r := rand.New(rand.NewSource(7))
	types := []string{entity.MovementTypeIN, entity.MovementTypeOUT, entity.MovementTypeADJUSTMENT}

	expected := 5
	for i := 0; i < 200; i++ {
		typ := types[r.Intn(len(types))]
		qty := r.Intn(9) + 1
		if typ == entity.MovementTypeADJUSTMENT && r.Intn(2) == 0 {
			qty = -qty
		}
		_, _, err := f.ledger.RecordMovement(ctx, MovementInput{ItemID: id, Type: typ, Quantity: qty})
		require.NoError(t, err)

		delta := qty
		if typ == entity.MovementTypeOUT {
			delta = -qty
		}
		expected += delta
		if expected < 0 {
			expected = 0
		}
	}
	got, err := f.items.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, expected, got.CurrentStock)
	assert.GreaterOrEqual(t, got.CurrentStock, 0)
}

func TestItemUseCase_UpdateDoesNotTouchStock(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	id := f.createItem(t, 10, 5)

	minimum := 12
	name := "Paracétamol 1g"
	resp, err := f.items.Update(ctx, id, dto.UpdateInventoryItemRequest{Name: &name, MinimumStock: &minimum})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.CurrentStock)
	assert.Equal(t, name, resp.Name)
	assert.True(t, resp.LowStock)

	_, err = f.items.Update(ctx, "missing", dto.UpdateInventoryItemRequest{Name: &name})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestItemUseCase_CreateRejectsNegativeStock(t *testing.T) {
	f := newFixture()
	_, err := f.items.Create(context.Background(), dto.CreateInventoryItemRequest{
		Name: "Gants", Category: entity.CategorySupply, CurrentStock: -1, Unit: "pieces",
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestItemUseCase_ListExpiring(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.items.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }

	for _, exp := range []string{"2026-10-01", "2026-11-10", "2027-06-01", ""} {
		_, err := f.items.Create(ctx, dto.CreateInventoryItemRequest{
			Name: "Lot " + exp, Category: entity.CategoryMedication, Unit: "boxes", ExpirationDate: exp,
		})
		require.NoError(t, err)
	}
	list, err := f.items.ListExpiring(ctx, 30)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2026-10-01", list[0].ExpirationDate)
	assert.Equal(t, "2026-11-10", list[1].ExpirationDate)
}
