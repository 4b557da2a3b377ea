// Package analytics contiene los casos de uso del panel principal (estadísticas y actividad).
package analytics

import (
	"context"
	"math"
	"time"

	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/application/usecase"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

const defaultActivityLimit = 10

// DashboardUseCase recalcula los indicadores en cada llamada (sin caché).
type DashboardUseCase struct {
	patientRepo         repository.PatientRepository
	appointmentRepo     repository.AppointmentRepository
	hospitalizationRepo repository.HospitalizationRepository
	itemRepo            repository.InventoryItemRepository
	feed                repository.ActivityFeed
	bedCapacity         int
	loc                 *time.Location
	now                 func() time.Time
}

// NewDashboardUseCase construye el caso de uso. bedCapacity es la base de la tasa de ocupación.
func NewDashboardUseCase(
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	hospitalizationRepo repository.HospitalizationRepository,
	itemRepo repository.InventoryItemRepository,
	feed repository.ActivityFeed,
	bedCapacity int,
	loc *time.Location,
) *DashboardUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardUseCase{
		patientRepo:         patientRepo,
		appointmentRepo:     appointmentRepo,
		hospitalizationRepo: hospitalizationRepo,
		itemRepo:            itemRepo,
		feed:                feed,
		bedCapacity:         bedCapacity,
		loc:                 loc,
		now:                 time.Now,
	}
}

// OccupancyRate porcentaje entero de camas ocupadas; 0 si la capacidad es 0.
func OccupancyRate(active, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return int(math.Round(float64(active) / float64(capacity) * 100))
}

// GetStats construye el DashboardStatsResponse.
//
// Cinco consultas en paralelo:
//  1. Count(pacientes)                 → ActivePatients
//  2. Count(citas de hoy)              → TodayConsultations
//  3. Count(citas de hoy, emergency)   → Emergencies
//  4. CountActive(hospitalizaciones)   → ActiveHospitalizations + OccupancyRate
//  5. ListLowStock()                   → LowStockAlerts
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	// "Hoy" en la zona horaria del hospital: [00:00, 24:00)
	from, to, err := usecase.DayRange(usecase.Today(uc.now(), uc.loc), uc.loc)
	if err != nil {
		return nil, err
	}

	type countResult struct {
		n   int
		err error
	}
	patientsCh := make(chan countResult, 1)
	todayCh := make(chan countResult, 1)
	emergencyCh := make(chan countResult, 1)
	activeCh := make(chan countResult, 1)
	lowCh := make(chan countResult, 1)

	go func() {
		n, err := uc.patientRepo.Count(ctx)
		patientsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.appointmentRepo.Count(ctx, repository.AppointmentFilter{From: &from, To: &to})
		todayCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.appointmentRepo.Count(ctx, repository.AppointmentFilter{From: &from, To: &to, Type: entity.AppointmentTypeEmergency})
		emergencyCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.hospitalizationRepo.CountActive(ctx)
		activeCh <- countResult{n, err}
	}()
	go func() {
		items, err := uc.itemRepo.ListLowStock(ctx)
		lowCh <- countResult{len(items), err}
	}()

	patients, today, emergencies, active, low := <-patientsCh, <-todayCh, <-emergencyCh, <-activeCh, <-lowCh
	for _, r := range []countResult{patients, today, emergencies, active, low} {
		if r.err != nil {
			return nil, r.err
		}
	}

	return &dto.DashboardStatsResponse{
		ActivePatients:         patients.n,
		TodayConsultations:     today.n,
		Emergencies:            emergencies.n,
		ActiveHospitalizations: active.n,
		BedCapacity:            uc.bedCapacity,
		OccupancyRate:          OccupancyRate(active.n, uc.bedCapacity),
		LowStockAlerts:         low.n,
	}, nil
}

// GetActivity eventos recientes, del más nuevo al más antiguo.
func (uc *DashboardUseCase) GetActivity(ctx context.Context, limit int) ([]dto.ActivityResponse, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > dto.MaxLimit {
		limit = dto.MaxLimit
	}
	events, err := uc.feed.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityResponse, 0, len(events))
	for _, a := range events {
		out = append(out, dto.ActivityResponse{
			ID:        a.ID,
			Kind:      a.Kind,
			Message:   a.Message,
			EntityID:  a.EntityID,
			UserID:    a.UserID,
			CreatedAt: a.CreatedAt,
		})
	}
	return out, nil
}
