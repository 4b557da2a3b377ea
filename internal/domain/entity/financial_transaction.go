package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción financiera.
const (
	TransactionTypeConsultation    = "consultation"
	TransactionTypeMedication      = "medication"
	TransactionTypeTest            = "test"
	TransactionTypeHospitalization = "hospitalization"
)

// Estados de transacción.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusPaid      = "paid"
	TransactionStatusCancelled = "cancelled"
)

// Medios de pago.
const (
	PaymentCash         = "cash"
	PaymentCard         = "card"
	PaymentInsurance    = "insurance"
	PaymentBankTransfer = "bank_transfer"
)

// DefaultCurrency moneda por defecto (franco CFA de África Occidental).
const DefaultCurrency = "XOF"

// FinancialTransaction representa un cobro asociado (opcionalmente) a un paciente.
type FinancialTransaction struct {
	ID              string
	PatientID       string // vacío si no está asociado a un paciente
	Type            string
	Amount          decimal.Decimal
	Currency        string
	Status          string
	PaymentMethod   string
	Description     string
	UserID          string // usuario que registró la transacción
	TransactionDate time.Time
	CreatedAt       time.Time
}

// ValidTransactionType indica si t es un tipo de transacción conocido.
func ValidTransactionType(t string) bool {
	switch t {
	case TransactionTypeConsultation, TransactionTypeMedication, TransactionTypeTest, TransactionTypeHospitalization:
		return true
	}
	return false
}

// ValidTransactionStatus indica si s es un estado de transacción conocido.
func ValidTransactionStatus(s string) bool {
	switch s {
	case TransactionStatusPending, TransactionStatusPaid, TransactionStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod indica si m es un medio de pago conocido. Vacío es válido.
func ValidPaymentMethod(m string) bool {
	switch m {
	case "", PaymentCash, PaymentCard, PaymentInsurance, PaymentBankTransfer:
		return true
	}
	return false
}
