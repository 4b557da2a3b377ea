// Package memory implementa los puertos de repositorio en memoria para desarrollo y tests.
// El Store se crea en main (o en el test) y se inyecta; no hay estado global.
package memory

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
)

type state struct {
	users            map[string]entity.User
	patients         map[string]entity.Patient
	medicalRecords   map[string]entity.MedicalRecord
	appointments     map[string]entity.Appointment
	schedules        map[string]entity.StaffSchedule
	items            map[string]entity.InventoryItem
	movements        []entity.InventoryMovement // orden de inserción
	labTests         map[string]entity.LaboratoryTest
	transactions     map[string]entity.FinancialTransaction
	hospitalizations map[string]entity.Hospitalization
}

func newState() state {
	return state{
		users:            make(map[string]entity.User),
		patients:         make(map[string]entity.Patient),
		medicalRecords:   make(map[string]entity.MedicalRecord),
		appointments:     make(map[string]entity.Appointment),
		schedules:        make(map[string]entity.StaffSchedule),
		items:            make(map[string]entity.InventoryItem),
		labTests:         make(map[string]entity.LaboratoryTest),
		transactions:     make(map[string]entity.FinancialTransaction),
		hospitalizations: make(map[string]entity.Hospitalization),
	}
}

// Store almacén en memoria protegido por un RWMutex.
// Las transacciones de inventario mantienen el lock exclusivo hasta el commit.
type Store struct {
	mu    sync.RWMutex
	state state
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{state: newState()}
}

// Close libera el estado. Existe para tener el mismo ciclo de vida que el pool de Postgres.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = newState()
}

func (s *Store) ensureID(id string) string {
	if id == "" {
		return uuid.New().String()
	}
	return id
}

// paginate aplica limit/offset sobre un listado ya ordenado.
func paginate[T any](xs []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(xs) {
		return []T{}
	}
	end := len(xs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return xs[offset:end]
}

// collect copia los valores de m que cumplen keep, ordenados con less.
func collect[T any](m map[string]T, keep func(*T) bool, less func(a, b *T) bool) []*T {
	out := make([]*T, 0, len(m))
	for _, v := range m {
		if keep == nil || keep(&v) {
			out = append(out, &v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func cloneRaw(r json.RawMessage) json.RawMessage {
	if r == nil {
		return nil
	}
	c := make(json.RawMessage, len(r))
	copy(c, r)
	return c
}
