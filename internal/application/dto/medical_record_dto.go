package dto

import (
	"encoding/json"
	"time"
)

// CreateMedicalRecordRequest entrada para registrar una consulta.
// DoctorID vacío = usuario autenticado. VisitDate nil = ahora.
type CreateMedicalRecordRequest struct {
	PatientID    string          `json:"patient_id" validate:"required"`
	DoctorID     string          `json:"doctor_id"`
	VisitDate    *time.Time      `json:"visit_date"`
	Diagnosis    string          `json:"diagnosis"`
	Symptoms     string          `json:"symptoms"`
	Treatment    string          `json:"treatment"`
	Prescription string          `json:"prescription"`
	Notes        string          `json:"notes"`
	Vitals       json.RawMessage `json:"vitals" swaggertype:"object"`
}

// MedicalRecordResponse salida de una historia clínica.
type MedicalRecordResponse struct {
	ID           string          `json:"id"`
	PatientID    string          `json:"patient_id"`
	DoctorID     string          `json:"doctor_id"`
	VisitDate    time.Time       `json:"visit_date"`
	Diagnosis    string          `json:"diagnosis"`
	Symptoms     string          `json:"symptoms"`
	Treatment    string          `json:"treatment"`
	Prescription string          `json:"prescription"`
	Notes        string          `json:"notes"`
	Vitals       json.RawMessage `json:"vitals,omitempty" swaggertype:"object"`
	CreatedAt    time.Time       `json:"created_at"`
}
