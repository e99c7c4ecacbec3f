package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cement-ledger/internal/application/dto"
	"github.com/tu-usuario/cement-ledger/internal/domain"
	"github.com/tu-usuario/cement-ledger/internal/domain/entity"
	"github.com/tu-usuario/cement-ledger/internal/domain/ledger"
	"github.com/tu-usuario/cement-ledger/internal/domain/repository"
	"github.com/tu-usuario/cement-ledger/pkg/logger"
)

// PaymentUseCase casos de uso de pagos. Tras cada mutación, totalPayments
// del cliente se recalcula desde el historial completo de pagos.
type PaymentUseCase struct {
	payments  repository.PaymentRepository
	customers repository.CustomerRepository
	log       *logger.Logger
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(
	payments repository.PaymentRepository,
	customers repository.CustomerRepository,
	log *logger.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, customers: customers, log: log}
}

// Create registra un abono y recalcula totalPayments del cliente.
func (uc *PaymentUseCase) Create(in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	if err := validatePayment(in); err != nil {
		return nil, err
	}

	payments, err := uc.payments.List()
	if err != nil {
		return nil, err
	}
	payment := entity.Payment{
		ID:           uuid.New().String(),
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		Amount:       in.Amount,
		Date:         in.Date,
		Notes:        in.Notes,
		CreatedAt:    time.Now().UTC(),
	}
	payments = append(payments, payment)
	if err := uc.payments.SaveAll(payments); err != nil {
		return nil, err
	}

	if err := uc.recomputeCustomerPayments(payment.CustomerID, payments); err != nil {
		return nil, err
	}
	return toPaymentResponse(&payment), nil
}

// Update reemplaza los campos mutables del pago identificado por id y
// recalcula totalPayments de los clientes afectados.
func (uc *PaymentUseCase) Update(paymentID string, in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	if err := validatePayment(in); err != nil {
		return nil, err
	}

	payments, err := uc.payments.List()
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range payments {
		if payments[i].ID == paymentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.ErrNotFound
	}
	oldPayment := payments[idx]

	payments[idx].CustomerID = in.CustomerID
	payments[idx].CustomerName = in.CustomerName
	payments[idx].Amount = in.Amount
	payments[idx].Date = in.Date
	payments[idx].Notes = in.Notes
	// ID y CreatedAt se preservan
	if err := uc.payments.SaveAll(payments); err != nil {
		return nil, err
	}

	if oldPayment.CustomerID != payments[idx].CustomerID {
		if err := uc.recomputeCustomerPayments(oldPayment.CustomerID, payments); err != nil {
			return nil, err
		}
	}
	if err := uc.recomputeCustomerPayments(payments[idx].CustomerID, payments); err != nil {
		return nil, err
	}
	return toPaymentResponse(&payments[idx]), nil
}

// List devuelve todos los pagos en orden de inserción.
func (uc *PaymentUseCase) List() ([]*dto.PaymentResponse, error) {
	payments, err := uc.payments.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, toPaymentResponse(&payments[i]))
	}
	return out, nil
}

// recomputeCustomerPayments fija totalPayments del cliente como la suma de
// todos sus pagos. Cliente inexistente: pago guardado, se omite en silencio.
func (uc *PaymentUseCase) recomputeCustomerPayments(customerID string, payments []entity.Payment) error {
	customers, err := uc.customers.List()
	if err != nil {
		return err
	}
	for i := range customers {
		if customers[i].CustomerID == customerID {
			customers[i].TotalPayments = ledger.CustomerPaymentTotal(payments, customerID)
			return uc.customers.SaveAll(customers)
		}
	}
	uc.log.Warn().Str("customerId", customerID).
		Msg("cliente no encontrado, pago guardado sin actualizar totalPayments")
	return nil
}

func validatePayment(in dto.PaymentRequest) error {
	if in.CustomerID == "" || in.CustomerName == "" {
		return fmt.Errorf("%w: la selección de cliente es requerida", domain.ErrInvalidInput)
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: el monto del pago debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.Date == "" {
		return fmt.Errorf("%w: la fecha es requerida", domain.ErrInvalidInput)
	}
	return nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:           p.ID,
		CustomerID:   p.CustomerID,
		CustomerName: p.CustomerName,
		Amount:       p.Amount,
		Date:         p.Date,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}
