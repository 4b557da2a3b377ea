package analytics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupancyRate(t *testing.T) {
	assert.Equal(t, 25, OccupancyRate(50, 200))
	assert.Equal(t, 0, OccupancyRate(0, 200))
	assert.Equal(t, 0, OccupancyRate(10, 0))
	assert.Equal(t, 1, OccupancyRate(1, 200)) // 0.5 redondea hacia arriba
	assert.Equal(t, 100, OccupancyRate(200, 200))
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	patients := memory.NewPatientRepository(store)
	appts := memory.NewAppointmentRepository(store)
	hosp := memory.NewHospitalizationRepository(store)
	items := memory.NewInventoryItemRepository(store)

	require.NoError(t, users.Create(ctx, &entity.User{ID: "d1", Username: "dr"}))
	for i := 0; i < 3; i++ {
		require.NoError(t, patients.Create(ctx, &entity.Patient{ID: fmt.Sprintf("p%d", i)}))
	}
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	for _, a := range []entity.Appointment{
		{PatientID: "p0", DoctorID: "d1", AppointmentDate: now, Type: entity.AppointmentTypeConsultation},
		{PatientID: "p1", DoctorID: "d1", AppointmentDate: now.Add(2 * time.Hour), Type: entity.AppointmentTypeEmergency},
		{PatientID: "p2", DoctorID: "d1", AppointmentDate: now.AddDate(0, 0, 1), Type: entity.AppointmentTypeEmergency},
	} {
		require.NoError(t, appts.Create(ctx, &a))
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, hosp.Create(ctx, &entity.Hospitalization{PatientID: "p0", DoctorID: "d1", Status: entity.HospitalizationActive}))
	}
	require.NoError(t, hosp.Create(ctx, &entity.Hospitalization{PatientID: "p1", DoctorID: "d1", Status: entity.HospitalizationDischarged}))
	require.NoError(t, items.Create(ctx, &entity.InventoryItem{Name: "A", CurrentStock: 1, MinimumStock: 5}))
	require.NoError(t, items.Create(ctx, &entity.InventoryItem{Name: "B", CurrentStock: 50, MinimumStock: 5}))

	uc := NewDashboardUseCase(patients, appts, hosp, items, memory.NewActivityFeed(10), 8, time.UTC)
	uc.now = func() time.Time { return now }

	stats, err := uc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.ActivePatients)
	assert.Equal(t, 2, stats.TodayConsultations)
	assert.Equal(t, 1, stats.Emergencies)
	assert.Equal(t, 2, stats.ActiveHospitalizations)
	assert.Equal(t, 25, stats.OccupancyRate)
	assert.Equal(t, 1, stats.LowStockAlerts)
}

type brokenPatients struct{ *memory.PatientRepo }

func (brokenPatients) Count(context.Context) (int, error) { return 0, errors.New("db caída") }

func TestGetStats_PropagatesErrors(t *testing.T) {
	store := memory.NewStore()
	uc := NewDashboardUseCase(brokenPatients{memory.NewPatientRepository(store)}, memory.NewAppointmentRepository(store),
		memory.NewHospitalizationRepository(store), memory.NewInventoryItemRepository(store), memory.NewActivityFeed(10), 200, time.UTC)
	_, err := uc.GetStats(context.Background())
	assert.Error(t, err)
}

func TestGetActivity(t *testing.T) {
	ctx := context.Background()
	feed := memory.NewActivityFeed(10)
	for i := 0; i < 3; i++ {
		require.NoError(t, feed.Push(ctx, &entity.Activity{ID: fmt.Sprint(i), Kind: entity.ActivityPatientRegistered}))
	}
	store := memory.NewStore()
	uc := NewDashboardUseCase(memory.NewPatientRepository(store), memory.NewAppointmentRepository(store),
		memory.NewHospitalizationRepository(store), memory.NewInventoryItemRepository(store), feed, 200, time.UTC)

	events, err := uc.GetActivity(ctx, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "2", events[0].ID)
}
