package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillItem línea de una factura: marca de cemento, sacos, precio unitario y total.
type BillItem struct {
	Name      string          `json:"name"` // una de las cuatro marcas (Tokyo, Sanstha, Atlas, Nipon)
	Bags      decimal.Decimal `json:"bags"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"` // bags * unitPrice
}

// Bill representa una venta de sacos de cemento.
// CustomerName es copia desnormalizada: no se re-sincroniza si el cliente cambia de nombre.
type Bill struct {
	ID           string          `json:"id"` // uuid asignado al crear; clave de actualización
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	StockNumber  string          `json:"stockNumber"` // lote de stock contra el que se registra
	Date         string          `json:"date"`
	Items        []BillItem      `json:"items"`
	BillTotal    decimal.Decimal `json:"billTotal"` // suma de items[].total
	CreatedAt    time.Time       `json:"createdAt"`
}
