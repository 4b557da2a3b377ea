package dto

import "time"

// CreateHospitalizationRequest entrada para ingresar un paciente.
type CreateHospitalizationRequest struct {
	PatientID       string     `json:"patient_id" validate:"required"`
	DoctorID        string     `json:"doctor_id" validate:"required"`
	RoomNumber      string     `json:"room_number" validate:"required,max=20"`
	BedNumber       string     `json:"bed_number" validate:"required,max=20"`
	AdmissionDate   *time.Time `json:"admission_date"`
	AdmissionReason string     `json:"admission_reason"`
}

// UpdateHospitalizationRequest actualización parcial (alta, traslado, cama).
type UpdateHospitalizationRequest struct {
	RoomNumber     *string    `json:"room_number" validate:"omitempty,min=1,max=20"`
	BedNumber      *string    `json:"bed_number" validate:"omitempty,min=1,max=20"`
	Status         *string    `json:"status" validate:"omitempty,oneof=active discharged transferred"`
	DischargeDate  *time.Time `json:"discharge_date"`
	DischargeNotes *string    `json:"discharge_notes"`
}

// HospitalizationResponse salida de una hospitalización.
type HospitalizationResponse struct {
	ID              string     `json:"id"`
	PatientID       string     `json:"patient_id"`
	DoctorID        string     `json:"doctor_id"`
	RoomNumber      string     `json:"room_number"`
	BedNumber       string     `json:"bed_number"`
	AdmissionDate   time.Time  `json:"admission_date"`
	DischargeDate   *time.Time `json:"discharge_date,omitempty"`
	Status          string     `json:"status"`
	AdmissionReason string     `json:"admission_reason"`
	DischargeNotes  string     `json:"discharge_notes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
