package ledger_test

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cement-ledger/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	records []entity.Customer
}

func (f *fakeCustomerRepo) List() ([]entity.Customer, error) {
	return append([]entity.Customer(nil), f.records...), nil
}

func (f *fakeCustomerRepo) SaveAll(customers []entity.Customer) error {
	f.records = append([]entity.Customer(nil), customers...)
	return nil
}

type fakeBillRepo struct {
	records []entity.Bill
}

func (f *fakeBillRepo) List() ([]entity.Bill, error) {
	return append([]entity.Bill(nil), f.records...), nil
}

func (f *fakeBillRepo) SaveAll(bills []entity.Bill) error {
	f.records = append([]entity.Bill(nil), bills...)
	return nil
}

type fakePaymentRepo struct {
	records []entity.Payment
}

func (f *fakePaymentRepo) List() ([]entity.Payment, error) {
	return append([]entity.Payment(nil), f.records...), nil
}

func (f *fakePaymentRepo) SaveAll(payments []entity.Payment) error {
	f.records = append([]entity.Payment(nil), payments...)
	return nil
}

type fakeStockRepo struct {
	records []entity.StockLot
}

func (f *fakeStockRepo) List() ([]entity.StockLot, error) {
	return append([]entity.StockLot(nil), f.records...), nil
}

func (f *fakeStockRepo) SaveAll(lots []entity.StockLot) error {
	f.records = append([]entity.StockLot(nil), lots...)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (f *fakeCustomerRepo) byID(id string) *entity.Customer {
	for i := range f.records {
		if f.records[i].CustomerID == id {
			return &f.records[i]
		}
	}
	return nil
}

func (f *fakeStockRepo) byID(id string) *entity.StockLot {
	for i := range f.records {
		if f.records[i].StockID == id {
			return &f.records[i]
		}
	}
	return nil
}
