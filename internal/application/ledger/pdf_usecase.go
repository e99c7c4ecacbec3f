package ledger

import (
	"fmt"

	"github.com/tu-usuario/cement-ledger/internal/domain"
	"github.com/tu-usuario/cement-ledger/internal/domain/entity"
	"github.com/tu-usuario/cement-ledger/internal/domain/repository"
)

// PDFUseCase genera el recibo imprimible de una factura.
type PDFUseCase struct {
	bills     repository.BillRepository
	customers repository.CustomerRepository
	generator BillPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	bills repository.BillRepository,
	customers repository.CustomerRepository,
	generator BillPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{bills: bills, customers: customers, generator: generator}
}

// DownloadBillPDF localiza la factura, carga el cliente si existe y genera
// el PDF del recibo.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
func (uc *PDFUseCase) DownloadBillPDF(billID string) (pdfBytes []byte, filename string, err error) {
	bills, err := uc.bills.List()
	if err != nil {
		return nil, "", fmt.Errorf("pdf: cargar facturas: %w", err)
	}
	var bill *entity.Bill
	for i := range bills {
		if bills[i].ID == billID {
			bill = &bills[i]
			break
		}
	}
	if bill == nil {
		return nil, "", domain.ErrNotFound
	}

	// El cliente puede no existir (no hay integridad referencial): el recibo
	// sale igualmente con los datos desnormalizados de la factura.
	var customer *entity.Customer
	customers, err := uc.customers.List()
	if err != nil {
		return nil, "", fmt.Errorf("pdf: cargar clientes: %w", err)
	}
	for i := range customers {
		if customers[i].CustomerID == bill.CustomerID {
			customer = &customers[i]
			break
		}
	}

	data, err := uc.generator.GenerateBillPDF(bill, customer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return data, fmt.Sprintf("factura-%s.pdf", bill.ID), nil
}
