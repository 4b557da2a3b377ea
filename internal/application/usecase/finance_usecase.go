package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hospital-api/internal/application/activity"
	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

// FinanceUseCase cobros y pagos.
type FinanceUseCase struct {
	repo        repository.FinancialTransactionRepository
	patientRepo repository.PatientRepository
	activity    *activity.Recorder
	currency    string
	now         func() time.Time
}

// NewFinanceUseCase construye el caso de uso; currency es la moneda por defecto.
func NewFinanceUseCase(
	repo repository.FinancialTransactionRepository,
	patientRepo repository.PatientRepository,
	recorder *activity.Recorder,
	currency string,
) *FinanceUseCase {
	if currency == "" {
		currency = entity.DefaultCurrency
	}
	return &FinanceUseCase{repo: repo, patientRepo: patientRepo, activity: recorder, currency: currency, now: time.Now}
}

// Create registra una transacción. amount > 0; estado por defecto pending.
func (uc *FinanceUseCase) Create(ctx context.Context, actorID string, in dto.CreateFinancialTransactionRequest) (*dto.FinancialTransactionResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if !in.Amount.IsPositive() {
		return nil, invalid("amount debe ser mayor que cero")
	}
	if in.PatientID != "" {
		if err := ensurePatient(ctx, uc.patientRepo, in.PatientID); err != nil {
			return nil, err
		}
	}
	currency := strings.ToUpper(in.Currency)
	if currency == "" {
		currency = uc.currency
	}
	status := in.Status
	if status == "" {
		status = entity.TransactionStatusPending
	}
	now := uc.now().UTC()
	date := now
	if in.TransactionDate != nil {
		date = in.TransactionDate.UTC()
	}
	t := &entity.FinancialTransaction{
		ID:              uuid.New().String(),
		PatientID:       in.PatientID,
		Type:            in.Type,
		Amount:          in.Amount,
		Currency:        currency,
		Status:          status,
		PaymentMethod:   in.PaymentMethod,
		Description:     in.Description,
		UserID:          actorID,
		TransactionDate: date,
		CreatedAt:       now,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	if t.Status == entity.TransactionStatusPaid {
		uc.recordPayment(ctx, t, actorID)
	}
	return toFinancialTransactionResponse(t), nil
}

// GetByID obtiene una transacción.
func (uc *FinanceUseCase) GetByID(ctx context.Context, id string) (*dto.FinancialTransactionResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, notFound("transacción", id)
	}
	return toFinancialTransactionResponse(t), nil
}

// Update cambia estado, medio de pago o descripción.
func (uc *FinanceUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateFinancialTransactionRequest) (*dto.FinancialTransactionResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, notFound("transacción", id)
	}
	wasPaid := t.Status == entity.TransactionStatusPaid
	setString(&t.Status, in.Status)
	setString(&t.PaymentMethod, in.PaymentMethod)
	setString(&t.Description, in.Description)
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	if !wasPaid && t.Status == entity.TransactionStatusPaid {
		uc.recordPayment(ctx, t, actorID)
	}
	return toFinancialTransactionResponse(t), nil
}

// List lista transacciones, opcionalmente de un paciente.
func (uc *FinanceUseCase) List(ctx context.Context, patientID string, limit, offset int) (*dto.ListResponse[dto.FinancialTransactionResponse], error) {
	list, err := uc.repo.List(ctx, patientID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FinancialTransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toFinancialTransactionResponse(t))
	}
	return &dto.ListResponse[dto.FinancialTransactionResponse]{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func (uc *FinanceUseCase) recordPayment(ctx context.Context, t *entity.FinancialTransaction, actorID string) {
	uc.activity.Record(ctx, entity.ActivityPaymentRecorded,
		fmt.Sprintf("Paiement reçu: %s %s (%s)", t.Amount.StringFixed(0), t.Currency, t.Type),
		t.ID, actorID)
}

func toFinancialTransactionResponse(t *entity.FinancialTransaction) *dto.FinancialTransactionResponse {
	return &dto.FinancialTransactionResponse{
		ID:              t.ID,
		PatientID:       t.PatientID,
		Type:            t.Type,
		Amount:          t.Amount,
		Currency:        t.Currency,
		Status:          t.Status,
		PaymentMethod:   t.PaymentMethod,
		Description:     t.Description,
		UserID:          t.UserID,
		TransactionDate: t.TransactionDate,
		CreatedAt:       t.CreatedAt,
	}
}
