package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment representa un abono de un cliente contra su saldo.
type Payment struct {
	ID           string          `json:"id"` // uuid asignado al crear; clave de actualización
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"` // copia desnormalizada
	Amount       decimal.Decimal `json:"amount"`       // siempre > 0
	Date         string          `json:"date"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"createdAt"`
}
