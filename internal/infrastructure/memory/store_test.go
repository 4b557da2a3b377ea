package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxRunner_RollbackLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	items := NewInventoryItemRepository(store)
	movs := NewInventoryMovementRepository(store)
	item := &entity.InventoryItem{Name: "Paracetamol", Category: entity.CategoryMedication, CurrentStock: 10, MinimumStock: 5}
	require.NoError(t, items.Create(ctx, item))

	boom := errors.New("boom")
	err := NewTxRunner(store).Run(ctx, func(ir repository.InventoryItemRepository, mr repository.InventoryMovementRepository) error {
		it, err := ir.GetForUpdate(ctx, item.ID)
		require.NoError(t, err)
		it.CurrentStock = 3
		require.NoError(t, ir.UpdateStock(ctx, it))
		require.NoError(t, mr.Create(ctx, &entity.InventoryMovement{ItemID: item.ID, Type: entity.MovementTypeOUT, Quantity: 7}))

		// Dentro de la transacción se ve lo preparado.
		staged, err := ir.GetByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, staged.CurrentStock)
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.CurrentStock)
	history, err := movs.ListByItem(ctx, item.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestTxRunner_CommitApplies(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	items := NewInventoryItemRepository(store)
	movs := NewInventoryMovementRepository(store)
	item := &entity.InventoryItem{Name: "Gants", Category: entity.CategorySupply, CurrentStock: 10}
	require.NoError(t, items.Create(ctx, item))

	err := NewTxRunner(store).Run(ctx, func(ir repository.InventoryItemRepository, mr repository.InventoryMovementRepository) error {
		it, err := ir.GetForUpdate(ctx, item.ID)
		if err != nil {
			return err
		}
		it.CurrentStock = 15
		if err := ir.UpdateStock(ctx, it); err != nil {
			return err
		}
		return mr.Create(ctx, &entity.InventoryMovement{ItemID: item.ID, Type: entity.MovementTypeIN, Quantity: 5})
	})
	require.NoError(t, err)

	got, _ := items.GetByID(ctx, item.ID)
	assert.Equal(t, 15, got.CurrentStock)
	history, _ := movs.ListByItem(ctx, item.ID, 10, 0)
	assert.Len(t, history, 1)
}

func TestItemRepo_UpdateKeepsStock(t *testing.T) {
	ctx := context.Background()
	items := NewInventoryItemRepository(NewStore())
	item := &entity.InventoryItem{Name: "Seringue", Category: entity.CategorySupply, CurrentStock: 8}
	require.NoError(t, items.Create(ctx, item))

	item.Name = "Seringue 5ml"
	item.CurrentStock = 999
	require.NoError(t, items.Update(ctx, item))

	got, _ := items.GetByID(ctx, item.ID)
	assert.Equal(t, "Seringue 5ml", got.Name)
	assert.Equal(t, 8, got.CurrentStock)
}

func TestItemRepo_ListLowStockOrderedByID(t *testing.T) {
	ctx := context.Background()
	items := NewInventoryItemRepository(NewStore())
	for _, it := range []*entity.InventoryItem{
		{ID: "c", Name: "C", CurrentStock: 1, MinimumStock: 5},
		{ID: "a", Name: "A", CurrentStock: 5, MinimumStock: 5},
		{ID: "b", Name: "B", CurrentStock: 9, MinimumStock: 5},
	} {
		require.NoError(t, items.Create(ctx, it))
	}
	low, err := items.ListLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "a", low[0].ID)
	assert.Equal(t, "c", low[1].ID)
}

func TestPatientRepo_SearchFoldsAccents(t *testing.T) {
	ctx := context.Background()
	patients := NewPatientRepository(NewStore())
	require.NoError(t, patients.Create(ctx, &entity.Patient{FirstName: "María", LastName: "Có", Phone: "+245 955 1234"}))
	require.NoError(t, patients.Create(ctx, &entity.Patient{FirstName: "João", LastName: "Silva", Phone: "+245 966 0000"}))

	found, err := patients.Search(ctx, "MAR", 20, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "María", found[0].FirstName)

	found, err = patients.Search(ctx, "joao", 20, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)

	found, err = patients.Search(ctx, "955", 20, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
}

func TestReferencesAreChecked(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	err := NewAppointmentRepository(store).Create(ctx, &entity.Appointment{PatientID: "nope", DoctorID: "nope"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	err = NewInventoryMovementRepository(store).Create(ctx, &entity.InventoryMovement{ItemID: "nope"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUserRepo_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(NewStore())
	require.NoError(t, users.Create(ctx, &entity.User{Username: "admin"}))
	err := users.Create(ctx, &entity.User{Username: "Admin"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestAppointmentRepo_DateRange(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, NewPatientRepository(store).Create(ctx, &entity.Patient{ID: "p1"}))
	require.NoError(t, NewUserRepository(store).Create(ctx, &entity.User{ID: "d1", Username: "dr"}))
	appts := NewAppointmentRepository(store)

	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	for _, h := range []int{-1, 9, 23} {
		require.NoError(t, appts.Create(ctx, &entity.Appointment{PatientID: "p1", DoctorID: "d1", AppointmentDate: day.Add(time.Duration(h) * time.Hour), Type: entity.AppointmentTypeConsultation}))
	}
	to := day.Add(24 * time.Hour)
	n, err := appts.Count(ctx, repository.AppointmentFilter{From: &day, To: &to})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPaginate(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{1, 2}, paginate(xs, 2, 0))
	assert.Equal(t, []int{5}, paginate(xs, 2, 4))
	assert.Empty(t, paginate(xs, 2, 10))
}

func TestActivityFeed_Bounded(t *testing.T) {
	ctx := context.Background()
	feed := NewActivityFeed(3)
	for _, id := range []string{"1", "2", "3", "4"} {
		require.NoError(t, feed.Push(ctx, &entity.Activity{ID: id}))
	}
	recent, err := feed.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "4", recent[0].ID)
	assert.Equal(t, "2", recent[2].ID)
}
