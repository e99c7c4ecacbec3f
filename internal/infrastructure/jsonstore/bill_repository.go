package jsonstore

import (
	"github.com/tu-usuario/cement-ledger/internal/domain/entity"
	"github.com/tu-usuario/cement-ledger/internal/domain/repository"
	"github.com/tu-usuario/cement-ledger/pkg/logger"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo persiste facturas en bills.json.
type BillRepo struct {
	col *collection[entity.Bill]
}

// NewBillRepository construye el adaptador sobre dataDir/bills.json.
func NewBillRepository(dataDir string, log *logger.Logger) *BillRepo {
	return &BillRepo{col: newCollection[entity.Bill](dataDir, "bills.json", log)}
}

// List devuelve todas las facturas en orden de inserción.
func (r *BillRepo) List() ([]entity.Bill, error) {
	return r.col.load()
}

// SaveAll reescribe la colección completa.
func (r *BillRepo) SaveAll(bills []entity.Bill) error {
	return r.col.save(bills)
}
