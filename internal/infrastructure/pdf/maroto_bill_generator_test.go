package pdf_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/cement-ledger/internal/domain/entity"
	"github.com/tu-usuario/cement-ledger/internal/infrastructure/pdf"
)

func sampleBill() *entity.Bill {
	return &entity.Bill{
		ID:           "b-1",
		CustomerID:   "CUS00001",
		CustomerName: "Alice Perera",
		StockNumber:  "LOT1",
		Date:         "2024-03-01",
		Items: []entity.BillItem{
			{
				Name:      entity.BrandTokyo,
				Bags:      decimal.RequireFromString("10"),
				UnitPrice: decimal.RequireFromString("5"),
				Total:     decimal.RequireFromString("50"),
			},
		},
		BillTotal: decimal.RequireFromString("50"),
	}
}

func TestGenerateBillPDF_ProduceDocumento(t *testing.T) {
	gen := pdf.NewMarotoBillGenerator("Cementos El Progreso")

	data, err := gen.GenerateBillPDF(sampleBill(), &entity.Customer{
		CustomerID:   "CUS00001",
		CustomerName: "Alice Perera",
		Location:     "Galle",
	})

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]), "cabecera PDF válida")
}

// El cliente puede no existir: el recibo sale con los datos desnormalizados
// de la factura.
func TestGenerateBillPDF_SinCliente(t *testing.T) {
	gen := pdf.NewMarotoBillGenerator("Cementos El Progreso")

	data, err := gen.GenerateBillPDF(sampleBill(), nil)

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
