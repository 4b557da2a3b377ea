package dto

import "time"

// CreateLaboratoryTestRequest entrada para solicitar un análisis.
// OrderedBy vacío = usuario autenticado.
type CreateLaboratoryTestRequest struct {
	PatientID   string     `json:"patient_id" validate:"required"`
	OrderedBy   string     `json:"ordered_by"`
	TestType    string     `json:"test_type" validate:"required,max=200"`
	OrderDate   *time.Time `json:"order_date"`
	NormalRange string     `json:"normal_range"`
	Notes       string     `json:"notes"`
}

// UpdateLaboratoryTestRequest actualización parcial (estado, resultados).
type UpdateLaboratoryTestRequest struct {
	Status            *string    `json:"status" validate:"omitempty,oneof=ordered in_progress completed cancelled"`
	SampleCollectedAt *time.Time `json:"sample_collected_at"`
	CompletedAt       *time.Time `json:"completed_at"`
	Results           *string    `json:"results"`
	NormalRange       *string    `json:"normal_range"`
	Notes             *string    `json:"notes"`
}

// LaboratoryTestResponse salida de un análisis.
type LaboratoryTestResponse struct {
	ID                string     `json:"id"`
	PatientID         string     `json:"patient_id"`
	OrderedBy         string     `json:"ordered_by"`
	TestType          string     `json:"test_type"`
	Status            string     `json:"status"`
	OrderDate         time.Time  `json:"order_date"`
	SampleCollectedAt *time.Time `json:"sample_collected_at,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	Results           string     `json:"results"`
	NormalRange       string     `json:"normal_range"`
	Notes             string     `json:"notes"`
	CreatedAt         time.Time  `json:"created_at"`
}
