package repository

import "github.com/tu-usuario/cement-ledger/internal/domain/entity"

// PaymentRepository puerto de persistencia para la colección de pagos.
type PaymentRepository interface {
	List() ([]entity.Payment, error)
	SaveAll(payments []entity.Payment) error
}
