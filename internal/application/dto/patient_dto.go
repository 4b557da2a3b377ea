package dto

import "time"

// CreatePatientRequest entrada para registrar un paciente.
type CreatePatientRequest struct {
	FirstName         string `json:"first_name" validate:"required,max=100"`
	LastName          string `json:"last_name" validate:"required,max=100"`
	DateOfBirth       string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender            string `json:"gender" validate:"required,oneof=M F"`
	Phone             string `json:"phone" validate:"max=30"`
	Address           string `json:"address"`
	EmergencyContact  string `json:"emergency_contact"`
	EmergencyPhone    string `json:"emergency_phone" validate:"max=30"`
	BloodType         string `json:"blood_type" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies         string `json:"allergies"`
	ChronicConditions string `json:"chronic_conditions"`
	Insurance         string `json:"insurance"`
}

// UpdatePatientRequest actualización parcial de un paciente.
type UpdatePatientRequest struct {
	FirstName         *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName          *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	DateOfBirth       *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender            *string `json:"gender" validate:"omitempty,oneof=M F"`
	Phone             *string `json:"phone" validate:"omitempty,max=30"`
	Address           *string `json:"address"`
	EmergencyContact  *string `json:"emergency_contact"`
	EmergencyPhone    *string `json:"emergency_phone" validate:"omitempty,max=30"`
	BloodType         *string `json:"blood_type" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies         *string `json:"allergies"`
	ChronicConditions *string `json:"chronic_conditions"`
	Insurance         *string `json:"insurance"`
}

// PatientResponse salida de un paciente.
type PatientResponse struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	DateOfBirth       string    `json:"date_of_birth"`
	Gender            string    `json:"gender"`
	Phone             string    `json:"phone"`
	Address           string    `json:"address"`
	EmergencyContact  string    `json:"emergency_contact"`
	EmergencyPhone    string    `json:"emergency_phone"`
	BloodType         string    `json:"blood_type"`
	Allergies         string    `json:"allergies"`
	ChronicConditions string    `json:"chronic_conditions"`
	Insurance         string    `json:"insurance"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
