package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente de la cementera.
// TotalBills y TotalPayments son campos derivados: se recalculan a partir del
// historial completo de facturas/pagos en cada mutación (nunca se editan a mano).
type Customer struct {
	CustomerID    string          `json:"customerId"` // CUS + secuencia de 5 dígitos, inmutable
	CustomerName  string          `json:"customerName"`
	Location      string          `json:"location"`
	ContactNumber string          `json:"contactNumber"`
	PastBills     decimal.Decimal `json:"pastBills"` // saldo de apertura previo al sistema
	TotalBills    decimal.Decimal `json:"totalBills"`
	TotalPayments decimal.Decimal `json:"totalPayments"`
	CreatedAt     time.Time       `json:"createdAt"`
}
