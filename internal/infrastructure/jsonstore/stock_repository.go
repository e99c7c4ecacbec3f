package jsonstore

import (
	"github.com/tu-usuario/cement-ledger/internal/domain/entity"
	"github.com/tu-usuario/cement-ledger/internal/domain/repository"
	"github.com/tu-usuario/cement-ledger/pkg/logger"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo persiste lotes de stock en stocks.json.
type StockRepo struct {
	col *collection[entity.StockLot]
}

// NewStockRepository construye el adaptador sobre dataDir/stocks.json.
func NewStockRepository(dataDir string, log *logger.Logger) *StockRepo {
	return &StockRepo{col: newCollection[entity.StockLot](dataDir, "stocks.json", log)}
}

// List devuelve todos los lotes en orden de inserción.
func (r *StockRepo) List() ([]entity.StockLot, error) {
	return r.col.load()
}

// SaveAll reescribe la colección completa.
func (r *StockRepo) SaveAll(lots []entity.StockLot) error {
	return r.col.save(lots)
}
