package entity

import "time"

// Estados de hospitalización.
const (
	HospitalizationActive      = "active"
	HospitalizationDischarged  = "discharged"
	HospitalizationTransferred = "transferred"
)

// Hospitalization representa el ingreso de un paciente a una cama.
type Hospitalization struct {
	ID              string
	PatientID       string
	DoctorID        string
	RoomNumber      string
	BedNumber       string
	AdmissionDate   time.Time
	DischargeDate   *time.Time
	Status          string
	AdmissionReason string
	DischargeNotes  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidHospitalizationStatus indica si s es un estado conocido.
func ValidHospitalizationStatus(s string) bool {
	switch s {
	case HospitalizationActive, HospitalizationDischarged, HospitalizationTransferred:
		return true
	}
	return false
}
