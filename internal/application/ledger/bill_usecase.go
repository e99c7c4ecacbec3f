package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/cement-ledger/internal/application/dto"
	"github.com/tu-usuario/cement-ledger/internal/domain"
	"github.com/tu-usuario/cement-ledger/internal/domain/entity"
	"github.com/tu-usuario/cement-ledger/internal/domain/ledger"
	"github.com/tu-usuario/cement-ledger/internal/domain/repository"
	"github.com/tu-usuario/cement-ledger/pkg/logger"
)

// BillUseCase casos de uso de facturas. Cada mutación mantiene consistentes
// los agregados dependientes: sacos del lote de stock y totalBills del
// cliente. El total del cliente se recalcula siempre desde el historial
// completo; el stock se ajusta de forma incremental (resta del lote viejo,
// suma al nuevo) tal como lo hacía el sistema original.
type BillUseCase struct {
	bills     repository.BillRepository
	customers repository.CustomerRepository
	stocks    repository.StockRepository
	log       *logger.Logger
}

// NewBillUseCase construye el caso de uso.
func NewBillUseCase(
	bills repository.BillRepository,
	customers repository.CustomerRepository,
	stocks repository.StockRepository,
	log *logger.Logger,
) *BillUseCase {
	return &BillUseCase{bills: bills, customers: customers, stocks: stocks, log: log}
}

// Create registra una factura y actualiza stock y total del cliente.
// Orden de escritura: factura → stock → cliente. No hay transacción que los
// abarque: un fallo intermedio deja agregados desfasados hasta la siguiente
// mutación sobre las mismas claves.
func (uc *BillUseCase) Create(in dto.BillRequest) (*dto.BillResponse, error) {
	if err := validateBill(in); err != nil {
		return nil, err
	}

	bills, err := uc.bills.List()
	if err != nil {
		return nil, err
	}
	items := toBillItems(in.Items)
	bill := entity.Bill{
		ID:           uuid.New().String(),
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		StockNumber:  in.StockNumber,
		Date:         in.Date,
		Items:        items,
		BillTotal:    ledger.NormalizeItems(items),
		CreatedAt:    time.Now().UTC(),
	}
	bills = append(bills, bill)
	if err := uc.bills.SaveAll(bills); err != nil {
		return nil, err
	}

	if err := uc.addToStock(bill.StockNumber, ledger.CountBags(bill.Items)); err != nil {
		return nil, err
	}
	if err := uc.recomputeCustomerBills(bill.CustomerID, bills); err != nil {
		return nil, err
	}
	return toBillResponse(&bill), nil
}

// Update reemplaza los campos mutables de la factura identificada por id y
// re-reconcilia los agregados: revierte los sacos del lote viejo, aplica los
// nuevos y recalcula el total de los clientes afectados.
func (uc *BillUseCase) Update(billID string, in dto.BillRequest) (*dto.BillResponse, error) {
	if err := validateBill(in); err != nil {
		return nil, err
	}

	bills, err := uc.bills.List()
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range bills {
		if bills[i].ID == billID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.ErrNotFound
	}
	oldBill := bills[idx]

	items := toBillItems(in.Items)
	bills[idx].CustomerID = in.CustomerID
	bills[idx].CustomerName = in.CustomerName
	bills[idx].StockNumber = in.StockNumber
	bills[idx].Date = in.Date
	bills[idx].Items = items
	bills[idx].BillTotal = ledger.NormalizeItems(items)
	// ID y CreatedAt se preservan
	if err := uc.bills.SaveAll(bills); err != nil {
		return nil, err
	}

	// Reversión incremental del lote viejo y aplicación al nuevo. Si ambos
	// stockNumber coinciden, las dos operaciones caen sobre el mismo lote en
	// secuencia y el efecto neto es quedar con los sacos nuevos.
	if err := uc.subFromStock(oldBill.StockNumber, ledger.CountBags(oldBill.Items)); err != nil {
		return nil, err
	}
	if err := uc.addToStock(bills[idx].StockNumber, ledger.CountBags(bills[idx].Items)); err != nil {
		return nil, err
	}

	if oldBill.CustomerID != bills[idx].CustomerID {
		if err := uc.recomputeCustomerBills(oldBill.CustomerID, bills); err != nil {
			return nil, err
		}
	}
	if err := uc.recomputeCustomerBills(bills[idx].CustomerID, bills); err != nil {
		return nil, err
	}
	return toBillResponse(&bills[idx]), nil
}

// List devuelve todas las facturas en orden de inserción.
func (uc *BillUseCase) List() ([]*dto.BillResponse, error) {
	bills, err := uc.bills.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BillResponse, 0, len(bills))
	for i := range bills {
		out = append(out, toBillResponse(&bills[i]))
	}
	return out, nil
}

// addToStock suma los sacos al lote indicado, creándolo si es la primera
// factura que lo referencia.
func (uc *BillUseCase) addToStock(stockNumber string, delta entity.BagCounts) error {
	lots, err := uc.stocks.List()
	if err != nil {
		return err
	}
	for i := range lots {
		if lots[i].StockID == stockNumber {
			lots[i].SetCounts(lots[i].Counts().Add(delta))
			return uc.stocks.SaveAll(lots)
		}
	}
	lot := entity.StockLot{StockID: stockNumber, CreatedAt: time.Now().UTC()}
	lot.SetCounts(delta)
	lots = append(lots, lot)
	return uc.stocks.SaveAll(lots)
}

// subFromStock resta los sacos del lote indicado. Lote inexistente: no hay
// nada que revertir. Puede dejar cantidades negativas si dos actualizaciones
// se entrelazan mal; se acepta, no se protege.
func (uc *BillUseCase) subFromStock(stockNumber string, delta entity.BagCounts) error {
	lots, err := uc.stocks.List()
	if err != nil {
		return err
	}
	for i := range lots {
		if lots[i].StockID == stockNumber {
			lots[i].SetCounts(lots[i].Counts().Sub(delta))
			return uc.stocks.SaveAll(lots)
		}
	}
	return nil
}

// recomputeCustomerBills fija totalBills del cliente como la suma de todas
// sus facturas. Cliente inexistente: la factura ya quedó guardada, se omite
// en silencio (solo queda constancia en el log).
func (uc *BillUseCase) recomputeCustomerBills(customerID string, bills []entity.Bill) error {
	customers, err := uc.customers.List()
	if err != nil {
		return err
	}
	for i := range customers {
		if customers[i].CustomerID == customerID {
			customers[i].TotalBills = ledger.CustomerBillTotal(bills, customerID)
			return uc.customers.SaveAll(customers)
		}
	}
	uc.log.Warn().Str("customerId", customerID).
		Msg("cliente no encontrado, factura guardada sin actualizar totalBills")
	return nil
}

func validateBill(in dto.BillRequest) error {
	if in.CustomerID == "" || in.CustomerName == "" {
		return fmt.Errorf("%w: la selección de cliente es requerida", domain.ErrInvalidInput)
	}
	if in.StockNumber == "" || in.Date == "" {
		return fmt.Errorf("%w: stockNumber y date son requeridos", domain.ErrInvalidInput)
	}
	return nil
}

func toBillItems(in []dto.BillItemRequest) []entity.BillItem {
	items := make([]entity.BillItem, 0, len(in))
	for _, it := range in {
		items = append(items, entity.BillItem{Name: it.Name, Bags: it.Bags, UnitPrice: it.UnitPrice})
	}
	return items
}

func toBillResponse(b *entity.Bill) *dto.BillResponse {
	items := make([]dto.BillItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, dto.BillItemResponse{
			Name: it.Name, Bags: it.Bags, UnitPrice: it.UnitPrice, Total: it.Total,
		})
	}
	return &dto.BillResponse{
		ID:           b.ID,
		CustomerID:   b.CustomerID,
		CustomerName: b.CustomerName,
		StockNumber:  b.StockNumber,
		Date:         b.Date,
		Items:        items,
		BillTotal:    b.BillTotal,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
}
