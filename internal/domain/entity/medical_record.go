package entity

import (
	"encoding/json"
	"time"
)

// MedicalRecord registra una consulta: diagnóstico, tratamiento y signos vitales.
// Vitals es JSON libre, ej. {"temperature": 37.5, "bloodPressure": "120/80", "pulse": 72}.
type MedicalRecord struct {
	ID           string
	PatientID    string
	DoctorID     string
	VisitDate    time.Time
	Diagnosis    string
	Symptoms     string
	Treatment    string
	Prescription string
	Notes        string
	Vitals       json.RawMessage
	CreatedAt    time.Time
}
