package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Marcas de cemento manejadas. Los ítems de factura con otro nombre no afectan stock.
const (
	BrandTokyo   = "Tokyo"
	BrandSanstha = "Sanstha"
	BrandAtlas   = "Atlas"
	BrandNipon   = "Nipon"
)

// BagCounts sacos por marca. Valor acumulable (ver Add/Sub).
type BagCounts struct {
	Tokyo   decimal.Decimal
	Sanstha decimal.Decimal
	Atlas   decimal.Decimal
	Nipon   decimal.Decimal
}

// Add devuelve la suma marca a marca.
func (b BagCounts) Add(o BagCounts) BagCounts {
	return BagCounts{
		Tokyo:   b.Tokyo.Add(o.Tokyo),
		Sanstha: b.Sanstha.Add(o.Sanstha),
		Atlas:   b.Atlas.Add(o.Atlas),
		Nipon:   b.Nipon.Add(o.Nipon),
	}
}

// Sub devuelve la resta marca a marca. Puede producir negativos: la reversión
// de stock en la actualización de facturas es incremental y no se protege.
func (b BagCounts) Sub(o BagCounts) BagCounts {
	return BagCounts{
		Tokyo:   b.Tokyo.Sub(o.Tokyo),
		Sanstha: b.Sanstha.Sub(o.Sanstha),
		Atlas:   b.Atlas.Sub(o.Atlas),
		Nipon:   b.Nipon.Sub(o.Nipon),
	}
}

// Total suma de las cuatro marcas.
func (b BagCounts) Total() decimal.Decimal {
	return b.Tokyo.Add(b.Sanstha).Add(b.Atlas).Add(b.Nipon)
}

// StockLot lote de inventario identificado por StockID (el stockNumber de las
// facturas). Se crea implícitamente con la primera factura que lo referencia y
// acumula los sacos de todas las facturas que lo nombran.
// Invariante: TotalNumber == Tokyo + Sanstha + Atlas + Nipon.
type StockLot struct {
	StockID     string          `json:"stockId"`
	Tokyo       decimal.Decimal `json:"tokyo"`
	Sanstha     decimal.Decimal `json:"sanstha"`
	Atlas       decimal.Decimal `json:"atlas"`
	Nipon       decimal.Decimal `json:"nipon"`
	TotalNumber decimal.Decimal `json:"totalNumber"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Counts devuelve los sacos del lote como BagCounts.
func (s *StockLot) Counts() BagCounts {
	return BagCounts{Tokyo: s.Tokyo, Sanstha: s.Sanstha, Atlas: s.Atlas, Nipon: s.Nipon}
}

// SetCounts reemplaza los sacos del lote y recalcula TotalNumber.
func (s *StockLot) SetCounts(c BagCounts) {
	s.Tokyo = c.Tokyo
	s.Sanstha = c.Sanstha
	s.Atlas = c.Atlas
	s.Nipon = c.Nipon
	s.TotalNumber = c.Total()
}
