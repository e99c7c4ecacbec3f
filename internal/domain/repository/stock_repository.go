package repository

import "github.com/tu-usuario/cement-ledger/internal/domain/entity"

// StockRepository puerto de persistencia para la colección de lotes de stock.
type StockRepository interface {
	List() ([]entity.StockLot, error)
	SaveAll(lots []entity.StockLot) error
}
