package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	CustomerName  string          `json:"customerName"`
	Location      string          `json:"location,omitempty"`
	ContactNumber string          `json:"contactNumber,omitempty"`
	PastBills     decimal.Decimal `json:"pastBills"` // saldo de apertura; opcional, cero por defecto
}

// CustomerResponse cliente en respuestas. Los totales son derivados.
type CustomerResponse struct {
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	Location      string          `json:"location"`
	ContactNumber string          `json:"contactNumber"`
	PastBills     decimal.Decimal `json:"pastBills"`
	TotalBills    decimal.Decimal `json:"totalBills"`
	TotalPayments decimal.Decimal `json:"totalPayments"`
	CreatedAt     string          `json:"createdAt"`
}

// BillItemRequest línea de factura: marca, sacos y precio unitario.
// El total de línea y el de factura se recalculan en el servidor.
type BillItemRequest struct {
	Name      string          `json:"name"`
	Bags      decimal.Decimal `json:"bags"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// BillRequest body para POST /api/bills y PUT /api/bills/:id.
type BillRequest struct {
	CustomerID   string            `json:"customerId"`
	CustomerName string            `json:"customerName"`
	StockNumber  string            `json:"stockNumber"`
	Date         string            `json:"date"`
	Items        []BillItemRequest `json:"items"`
}

// BillItemResponse línea de factura en respuestas.
type BillItemResponse struct {
	Name      string          `json:"name"`
	Bags      decimal.Decimal `json:"bags"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}

// BillResponse factura en respuestas.
type BillResponse struct {
	ID           string             `json:"id"`
	CustomerID   string             `json:"customerId"`
	CustomerName string             `json:"customerName"`
	StockNumber  string             `json:"stockNumber"`
	Date         string             `json:"date"`
	Items        []BillItemResponse `json:"items"`
	BillTotal    decimal.Decimal    `json:"billTotal"`
	CreatedAt    string             `json:"createdAt"`
}

// PaymentRequest body para POST /api/payments y PUT /api/payments/:id.
type PaymentRequest struct {
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Notes        string          `json:"notes,omitempty"`
}

// PaymentResponse pago en respuestas.
type PaymentResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Notes        string          `json:"notes"`
	CreatedAt    string          `json:"createdAt"`
}

// StockLotResponse lote de stock con los sacos acumulados por marca.
type StockLotResponse struct {
	StockID     string          `json:"stockId"`
	Tokyo       decimal.Decimal `json:"tokyo"`
	Sanstha     decimal.Decimal `json:"sanstha"`
	Atlas       decimal.Decimal `json:"atlas"`
	Nipon       decimal.Decimal `json:"nipon"`
	TotalNumber decimal.Decimal `json:"totalNumber"`
	CreatedAt   string          `json:"createdAt"`
}
