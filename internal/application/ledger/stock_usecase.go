package ledger

import (
	"time"

	"github.com/tu-usuario/cement-ledger/internal/application/dto"
	"github.com/tu-usuario/cement-ledger/internal/domain/repository"
)

// StockUseCase listado de lotes de stock, tal como están almacenados.
type StockUseCase struct {
	stocks repository.StockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stocks repository.StockRepository) *StockUseCase {
	return &StockUseCase{stocks: stocks}
}

// List devuelve todos los lotes en orden de inserción. Los totales por marca
// para la vista agregada se calculan en el cliente, no aquí.
func (uc *StockUseCase) List() ([]*dto.StockLotResponse, error) {
	lots, err := uc.stocks.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockLotResponse, 0, len(lots))
	for i := range lots {
		s := &lots[i]
		out = append(out, &dto.StockLotResponse{
			StockID:     s.StockID,
			Tokyo:       s.Tokyo,
			Sanstha:     s.Sanstha,
			Atlas:       s.Atlas,
			Nipon:       s.Nipon,
			TotalNumber: s.TotalNumber,
			CreatedAt:   s.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}
