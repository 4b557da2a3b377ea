package dto

import "time"

// CreateStaffScheduleRequest entrada para registrar un turno.
type CreateStaffScheduleRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime  string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime    string `json:"end_time" validate:"required,datetime=15:04"`
	Type       string `json:"type" validate:"omitempty,oneof=regular guard oncall"`
	Department string `json:"department"`
}

// StaffScheduleResponse salida de un turno.
type StaffScheduleResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Type       string    `json:"type"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}
