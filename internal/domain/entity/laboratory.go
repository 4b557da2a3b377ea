package entity

import "time"

// Estados de un análisis de laboratorio.
const (
	LabStatusOrdered    = "ordered"
	LabStatusInProgress = "in_progress"
	LabStatusCompleted  = "completed"
	LabStatusCancelled  = "cancelled"
)

// LaboratoryTest representa un análisis solicitado para un paciente.
type LaboratoryTest struct {
	ID                string
	PatientID         string
	OrderedBy         string
	TestType          string
	Status            string
	OrderDate         time.Time
	SampleCollectedAt *time.Time
	CompletedAt       *time.Time
	Results           string
	NormalRange       string
	Notes             string
	CreatedAt         time.Time
}

// ValidLabStatus indica si s es un estado de análisis conocido.
func ValidLabStatus(s string) bool {
	switch s {
	case LabStatusOrdered, LabStatusInProgress, LabStatusCompleted, LabStatusCancelled:
		return true
	}
	return false
}
