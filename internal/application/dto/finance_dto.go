package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFinancialTransactionRequest entrada para registrar un cobro.
type CreateFinancialTransactionRequest struct {
	PatientID       string          `json:"patient_id"`
	Type            string          `json:"type" validate:"required,oneof=consultation medication test hospitalization"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"string"`
	Currency        string          `json:"currency" validate:"omitempty,len=3"`
	Status          string          `json:"status" validate:"omitempty,oneof=pending paid cancelled"`
	PaymentMethod   string          `json:"payment_method" validate:"omitempty,oneof=cash card insurance bank_transfer"`
	Description     string          `json:"description"`
	TransactionDate *time.Time      `json:"transaction_date"`
}

// UpdateFinancialTransactionRequest actualización parcial (estado, medio de pago, descripción).
type UpdateFinancialTransactionRequest struct {
	Status        *string `json:"status" validate:"omitempty,oneof=pending paid cancelled"`
	PaymentMethod *string `json:"payment_method" validate:"omitempty,oneof=cash card insurance bank_transfer"`
	Description   *string `json:"description"`
}

// FinancialTransactionResponse salida de una transacción.
type FinancialTransactionResponse struct {
	ID              string          `json:"id"`
	PatientID       string          `json:"patient_id,omitempty"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"string"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	PaymentMethod   string          `json:"payment_method"`
	Description     string          `json:"description"`
	UserID          string          `json:"user_id"`
	TransactionDate time.Time       `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TypeTotalDTO cantidad y total por tipo de transacción.
type TypeTotalDTO struct {
	Type  string          `json:"type"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total" swaggertype:"string"`
}

// FinancialSummaryResponse resumen financiero del período [from, to).
type FinancialSummaryResponse struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	Currency      string          `json:"currency"`
	TotalRevenue  decimal.Decimal `json:"total_revenue" swaggertype:"string"`  // pagadas
	PendingAmount decimal.Decimal `json:"pending_amount" swaggertype:"string"` // pendientes
	TodayRevenue  decimal.Decimal `json:"today_revenue" swaggertype:"string"`
	CountByStatus map[string]int  `json:"count_by_status"`
	ByType        []TypeTotalDTO  `json:"by_type"`
}
