package entity

import "time"

// Tipos de cita.
const (
	AppointmentTypeConsultation = "consultation"
	AppointmentTypeFollowUp     = "followup"
	AppointmentTypeEmergency    = "emergency"
)

// Estados de cita.
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// DefaultAppointmentDuration duración por defecto en minutos.
const DefaultAppointmentDuration = 30

// Appointment representa una cita entre un paciente y un médico.
type Appointment struct {
	ID              string
	PatientID       string
	DoctorID        string
	AppointmentDate time.Time
	Duration        int // minutos
	Type            string
	Status          string
	Reason          string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidAppointmentType indica si t es un tipo de cita conocido.
func ValidAppointmentType(t string) bool {
	switch t {
	case AppointmentTypeConsultation, AppointmentTypeFollowUp, AppointmentTypeEmergency:
		return true
	}
	return false
}

// ValidAppointmentStatus indica si s es un estado de cita conocido.
func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}
