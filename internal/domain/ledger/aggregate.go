// Package ledger contiene la aritmética de agregación del libro mayor: los
// totales derivados del cliente se recalculan siempre desde el historial
// completo de transacciones, nunca por parches incrementales.
package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cement-ledger/internal/domain/entity"
)

// NormalizeItems recalcula el total de cada línea (bags * unitPrice) y
// devuelve el total de la factura. Se ignora cualquier total enviado por el
// cliente: el invariante billTotal == Σ items[].total se garantiza aquí.
func NormalizeItems(items []entity.BillItem) decimal.Decimal {
	billTotal := decimal.Zero
	for i := range items {
		items[i].Total = items[i].Bags.Mul(items[i].UnitPrice)
		billTotal = billTotal.Add(items[i].Total)
	}
	return billTotal
}

// CountBags calcula los sacos por marca de las líneas de una factura. Un ítem
// cuyo nombre coincide con una marca aporta su campo bags; marca ausente vale 0.
func CountBags(items []entity.BillItem) entity.BagCounts {
	var c entity.BagCounts
	for _, it := range items {
		switch it.Name {
		case entity.BrandTokyo:
			c.Tokyo = c.Tokyo.Add(it.Bags)
		case entity.BrandSanstha:
			c.Sanstha = c.Sanstha.Add(it.Bags)
		case entity.BrandAtlas:
			c.Atlas = c.Atlas.Add(it.Bags)
		case entity.BrandNipon:
			c.Nipon = c.Nipon.Add(it.Bags)
		}
	}
	return c
}

// CustomerBillTotal suma billTotal de todas las facturas del cliente.
func CustomerBillTotal(bills []entity.Bill, customerID string) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bills {
		if b.CustomerID == customerID {
			total = total.Add(b.BillTotal)
		}
	}
	return total
}

// CustomerPaymentTotal suma amount de todos los pagos del cliente.
func CustomerPaymentTotal(payments []entity.Payment, customerID string) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.CustomerID == customerID {
			total = total.Add(p.Amount)
		}
	}
	return total
}
