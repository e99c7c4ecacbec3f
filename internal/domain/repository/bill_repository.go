package repository

import "github.com/tu-usuario/cement-ledger/internal/domain/entity"

// BillRepository puerto de persistencia para la colección de facturas.
type BillRepository interface {
	List() ([]entity.Bill, error)
	SaveAll(bills []entity.Bill) error
}
