// Package seed carga los datos iniciales del hospital (cuentas por defecto y datos de ejemplo).
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword contraseña de las cuentas iniciales. Debe cambiarse en producción.
const DefaultPassword = "password"

// Seeder inserta datos de forma idempotente: lo que ya existe no se toca.
type Seeder struct {
	users      repository.UserRepository
	patients   repository.PatientRepository
	items      repository.InventoryItemRepository
	log        zerolog.Logger
	bcryptCost int
	now        func() time.Time
}

// NewSeeder construye el seeder.
func NewSeeder(users repository.UserRepository, patients repository.PatientRepository, items repository.InventoryItemRepository, log zerolog.Logger) *Seeder {
	return &Seeder{users: users, patients: patients, items: items, log: log, bcryptCost: bcrypt.DefaultCost, now: time.Now}
}

// Result cuántos registros se crearon en cada grupo.
type Result struct {
	Users    int
	Patients int
	Items    int
}

func defaultUsers() []entity.User {
	return []entity.User{
		{Username: "admin", FirstName: "Administrateur", LastName: "Système", Email: "admin@hnsm.gw",
			Role: entity.RoleAdmin, Department: "Administration", Phone: "+245 320 1000"},
		{Username: "dr.santos", FirstName: "Maria", LastName: "Santos", Email: "maria.santos@hnsm.gw",
			Role: entity.RoleDoctor, Department: "Cardiologie", Phone: "+245 320 1001"},
	}
}

func samplePatients() []entity.Patient {
	return []entity.Patient{
		{FirstName: "Aminata", LastName: "Baldé", DateOfBirth: "1987-04-12", Gender: entity.GenderFemale,
			Phone: "+245 955 100 200", Address: "Bairro de Ajuda, Bissau", BloodType: "O+"},
		{FirstName: "João", LastName: "Có", DateOfBirth: "1979-11-03", Gender: entity.GenderMale,
			Phone: "+245 966 300 400", Address: "Bairro Militar, Bissau", BloodType: "A+", ChronicConditions: "Hypertension"},
		{FirstName: "Fatoumata", LastName: "Djaló", DateOfBirth: "2015-06-21", Gender: entity.GenderFemale,
			Address: "Bafatá", EmergencyContact: "Mamadu Djaló", EmergencyPhone: "+245 955 700 800"},
	}
}

func sampleItems() []entity.InventoryItem {
	price := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}
	return []entity.InventoryItem{
		{Name: "Amoxicilline 500mg", Category: entity.CategoryMedication, CurrentStock: 120, MinimumStock: 50,
			Unit: "boxes", UnitPrice: price("1500"), Supplier: "CECOME", ExpirationDate: "2027-03-31", BatchNumber: "AMX-2409"},
		{Name: "Gants d'examen", Category: entity.CategorySupply, CurrentStock: 8, MinimumStock: 20,
			Unit: "boxes", UnitPrice: price("3500"), Supplier: "CECOME", Location: "Magasin B"},
		{Name: "Paracétamol 500mg", Category: entity.CategoryMedication, CurrentStock: 300, MinimumStock: 100,
			Unit: "boxes", UnitPrice: price("500"), Supplier: "CECOME", ExpirationDate: "2026-12-31", BatchNumber: "PCM-2411"},
		{Name: "Tensiomètre", Category: entity.CategoryEquipment, CurrentStock: 4, MinimumStock: 2,
			Unit: "pieces", UnitPrice: price("45000"), Location: "Cardiologie"},
	}
}

// Run crea las cuentas por defecto y, si withSamples, pacientes y artículos de ejemplo
// (solo cuando las tablas están vacías).
func (s *Seeder) Run(ctx context.Context, withSamples bool) (Result, error) {
	var res Result
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), s.bcryptCost)
	if err != nil {
		return res, fmt.Errorf("seed: hash: %w", err)
	}
	now := s.now().UTC()

	for _, u := range defaultUsers() {
		existing, err := s.users.GetByUsername(ctx, u.Username)
		if err != nil {
			return res, fmt.Errorf("seed: buscar usuario %s: %w", u.Username, err)
		}
		if existing != nil {
			continue
		}
		u.ID = uuid.New().String()
		u.PasswordHash = string(hash)
		u.IsActive = true
		u.CreatedAt = now
		if err := s.users.Create(ctx, &u); err != nil {
			return res, fmt.Errorf("seed: crear usuario %s: %w", u.Username, err)
		}
		res.Users++
		s.log.Info().Str("username", u.Username).Str("role", u.Role).Msg("usuario creado")
	}
	if !withSamples {
		return res, nil
	}

	count, err := s.patients.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("seed: contar pacientes: %w", err)
	}
	if count == 0 {
		for _, p := range samplePatients() {
			p.ID = uuid.New().String()
			p.CreatedAt, p.UpdatedAt = now, now
			if err := s.patients.Create(ctx, &p); err != nil {
				return res, fmt.Errorf("seed: crear paciente: %w", err)
			}
			res.Patients++
		}
	}

	existing, err := s.items.ListAll(ctx)
	if err != nil {
		return res, fmt.Errorf("seed: listar inventario: %w", err)
	}
	if len(existing) == 0 {
		for _, it := range sampleItems() {
			it.ID = uuid.New().String()
			it.CreatedAt, it.UpdatedAt = now, now
			if err := s.items.Create(ctx, &it); err != nil {
				return res, fmt.Errorf("seed: crear artículo: %w", err)
			}
			res.Items++
		}
	}
	s.log.Info().Int("users", res.Users).Int("patients", res.Patients).Int("items", res.Items).Msg("seed completado")
	return res, nil
}
