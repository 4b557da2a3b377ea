package entity

import "time"

// Géneros admitidos para Patient.
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// Patient representa un paciente registrado en el hospital.
type Patient struct {
	ID                string
	FirstName         string
	LastName          string
	DateOfBirth       string // YYYY-MM-DD
	Gender            string // M, F
	Phone             string
	Address           string
	EmergencyContact  string
	EmergencyPhone    string
	BloodType         string
	Allergies         string
	ChronicConditions string
	Insurance         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
