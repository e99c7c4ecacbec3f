package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cement-ledger/internal/application/dto"
	"github.com/tu-usuario/cement-ledger/internal/application/ledger"
)

// StockHandler maneja el listado de lotes de stock (protegido).
type StockHandler struct {
	uc *ledger.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *ledger.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar lotes de stock
// @Tags         stocks
// @Produce      json
// @Success      200  {array}  dto.StockLotResponse
// @Router       /api/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
