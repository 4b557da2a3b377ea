package entity

import "time"

// Tipos de turno.
const (
	ShiftRegular = "regular"
	ShiftGuard   = "guard"
	ShiftOnCall  = "oncall"
)

// StaffSchedule representa un turno de un miembro del personal.
type StaffSchedule struct {
	ID         string
	UserID     string
	Date       string // YYYY-MM-DD
	StartTime  string // HH:MM
	EndTime    string // HH:MM
	Type       string // regular, guard, oncall
	Department string
	CreatedAt  time.Time
}
