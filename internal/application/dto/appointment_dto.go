package dto

import "time"

// CreateAppointmentRequest entrada para agendar una cita.
type CreateAppointmentRequest struct {
	PatientID       string    `json:"patient_id" validate:"required"`
	DoctorID        string    `json:"doctor_id" validate:"required"`
	AppointmentDate time.Time `json:"appointment_date" validate:"required"`
	Duration        int       `json:"duration" validate:"min=0,max=480"`
	Type            string    `json:"type" validate:"required,oneof=consultation followup emergency"`
	Status          string    `json:"status" validate:"omitempty,oneof=scheduled confirmed completed cancelled"`
	Reason          string    `json:"reason"`
	Notes           string    `json:"notes"`
}

// UpdateAppointmentRequest actualización parcial de una cita.
type UpdateAppointmentRequest struct {
	DoctorID        *string    `json:"doctor_id" validate:"omitempty,min=1"`
	AppointmentDate *time.Time `json:"appointment_date"`
	Duration        *int       `json:"duration" validate:"omitempty,min=1,max=480"`
	Type            *string    `json:"type" validate:"omitempty,oneof=consultation followup emergency"`
	Status          *string    `json:"status" validate:"omitempty,oneof=scheduled confirmed completed cancelled"`
	Reason          *string    `json:"reason"`
	Notes           *string    `json:"notes"`
}

// AppointmentFilterRequest filtros de listado; Date en YYYY-MM-DD (zona horaria del hospital).
type AppointmentFilterRequest struct {
	Date      string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	PatientID string `query:"patientId"`
	DoctorID  string `query:"doctorId"`
}

// AppointmentResponse salida de una cita.
type AppointmentResponse struct {
	ID              string    `json:"id"`
	PatientID       string    `json:"patient_id"`
	DoctorID        string    `json:"doctor_id"`
	AppointmentDate time.Time `json:"appointment_date"`
	Duration        int       `json:"duration"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	Reason          string    `json:"reason"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
