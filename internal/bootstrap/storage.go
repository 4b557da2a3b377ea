// Package bootstrap arma la capa de persistencia elegida por configuración
// (PostgreSQL o memoria) y el feed de actividad (Redis, PostgreSQL o memoria).
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Hospital-api/internal/application/inventory"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
	"github.com/jhoicas/Hospital-api/internal/infrastructure/memory"
	"github.com/jhoicas/Hospital-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Hospital-api/internal/infrastructure/redis"
	"github.com/jhoicas/Hospital-api/pkg/config"
	"github.com/jhoicas/Hospital-api/pkg/logger"
)

// ActivityFeedSize eventos conservados en el feed del dashboard.
const ActivityFeedSize = 100

// Storage repositorios y runner transaccional del backend activo.
type Storage struct {
	Backend string
	Feed    string // redis | postgres | memory

	Users            repository.UserRepository
	Patients         repository.PatientRepository
	MedicalRecords   repository.MedicalRecordRepository
	Appointments     repository.AppointmentRepository
	Schedules        repository.StaffScheduleRepository
	Items            repository.InventoryItemRepository
	Movements        repository.InventoryMovementRepository
	LabTests         repository.LaboratoryTestRepository
	Transactions     repository.FinancialTransactionRepository
	Hospitalizations repository.HospitalizationRepository
	Activity         repository.ActivityFeed
	TxRunner         inventory.TxRunner

	closers []func()
}

// Close libera pool, cliente Redis y store en orden inverso de apertura.
func (s *Storage) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// Open construye el Storage según cfg. Con PostgreSQL aplica las migraciones si DB_AUTO_MIGRATE.
// Si REDIS_ADDR está definido el feed de actividad va a Redis, compartido entre réplicas.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Storage, error) {
	if cfg == nil {
		return nil, errors.New("bootstrap: configuración nula")
	}
	if log == nil {
		log = logger.Nop()
	}
	s := &Storage{Backend: cfg.App.StoreBackend}

	switch cfg.App.StoreBackend {
	case config.StoreMemory:
		s.openMemory()
	case config.StorePostgres:
		if err := s.openPostgres(ctx, cfg.DB, log); err != nil {
			s.Close()
			return nil, err
		}
	default:
		return nil, fmt.Errorf("bootstrap: backend desconocido %q", cfg.App.StoreBackend)
	}

	if cfg.Redis.Addr != "" {
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.closers = append(s.closers, func() { _ = rdb.Close() })
		s.Activity = infraredis.NewActivityFeed(rdb, infraredis.DefaultFeedKey, ActivityFeedSize)
		s.Feed = "redis"
	}

	log.Info().Str("backend", s.Backend).Str("activity_feed", s.Feed).Msg("almacenamiento listo")
	return s, nil
}

func (s *Storage) openMemory() {
	store := memory.NewStore()
	s.closers = append(s.closers, store.Close)
	s.Users = memory.NewUserRepository(store)
	s.Patients = memory.NewPatientRepository(store)
	s.MedicalRecords = memory.NewMedicalRecordRepository(store)
	s.Appointments = memory.NewAppointmentRepository(store)
	s.Schedules = memory.NewStaffScheduleRepository(store)
	s.Items = memory.NewInventoryItemRepository(store)
	s.Movements = memory.NewInventoryMovementRepository(store)
	s.LabTests = memory.NewLaboratoryTestRepository(store)
	s.Transactions = memory.NewFinancialTransactionRepository(store)
	s.Hospitalizations = memory.NewHospitalizationRepository(store)
	s.TxRunner = memory.NewTxRunner(store)
	s.Activity = memory.NewActivityFeed(ActivityFeedSize)
	s.Feed = config.StoreMemory
}

func (s *Storage) openPostgres(ctx context.Context, cfg config.DBConfig, log *logger.Logger) error {
	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.ConnectionString()); err != nil {
			return fmt.Errorf("migraciones: %w", err)
		}
		log.Info().Msg("migraciones aplicadas")
	}
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	s.closers = append(s.closers, pool.Close)
	s.bindPostgres(pool)
	return nil
}

func (s *Storage) bindPostgres(pool *pgxpool.Pool) {
	s.Users = postgres.NewUserRepository(pool)
	s.Patients = postgres.NewPatientRepository(pool)
	s.MedicalRecords = postgres.NewMedicalRecordRepository(pool)
	s.Appointments = postgres.NewAppointmentRepository(pool)
	s.Schedules = postgres.NewStaffScheduleRepository(pool)
	s.Items = postgres.NewInventoryItemRepository(pool)
	s.Movements = postgres.NewInventoryMovementRepository(pool)
	s.LabTests = postgres.NewLaboratoryTestRepository(pool)
	s.Transactions = postgres.NewFinancialTransactionRepository(pool)
	s.Hospitalizations = postgres.NewHospitalizationRepository(pool)
	s.TxRunner = postgres.NewTxRunner(pool)
	s.Activity = postgres.NewActivityFeed(pool, ActivityFeedSize)
	s.Feed = config.StorePostgres
}
