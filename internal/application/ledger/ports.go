package ledger

import "github.com/tu-usuario/cement-ledger/internal/domain/entity"

// BillPDFGenerator puerto para el recibo imprimible de una factura.
// customer puede ser nil si la factura referencia un cliente inexistente.
type BillPDFGenerator interface {
	GenerateBillPDF(bill *entity.Bill, customer *entity.Customer) ([]byte, error)
}
