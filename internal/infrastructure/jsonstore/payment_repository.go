package jsonstore

import (
	"github.com/tu-usuario/cement-ledger/internal/domain/entity"
	"github.com/tu-usuario/cement-ledger/internal/domain/repository"
	"github.com/tu-usuario/cement-ledger/pkg/logger"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo persiste pagos en payments.json.
type PaymentRepo struct {
	col *collection[entity.Payment]
}

// NewPaymentRepository construye el adaptador sobre dataDir/payments.json.
func NewPaymentRepository(dataDir string, log *logger.Logger) *PaymentRepo {
	return &PaymentRepo{col: newCollection[entity.Payment](dataDir, "payments.json", log)}
}

// List devuelve todos los pagos en orden de inserción.
func (r *PaymentRepo) List() ([]entity.Payment, error) {
	return r.col.load()
}

// SaveAll reescribe la colección completa.
func (r *PaymentRepo) SaveAll(payments []entity.Payment) error {
	return r.col.save(payments)
}
