package entity

import "time"

// Tipos de evento del feed de actividad del dashboard.
const (
	ActivityPatientRegistered = "patient_registered"
	ActivityAppointmentBooked = "appointment_booked"
	ActivityMovementRecorded  = "movement_recorded"
	ActivityPatientAdmitted   = "patient_admitted"
	ActivityLabTestOrdered    = "lab_test_ordered"
	ActivityPaymentRecorded   = "payment_recorded"
)

// Activity evento reciente mostrado en el dashboard. No es fuente de verdad.
type Activity struct {
	ID        string
	Kind      string
	Message   string
	EntityID  string
	UserID    string
	CreatedAt time.Time
}
