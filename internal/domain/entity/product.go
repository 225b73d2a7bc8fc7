package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnitDefault unidad de medida por defecto ("DONA" = pieza).
// El campo es texto libre: el cliente puede enviar KG, L, m, etc.
const UnitDefault = "DONA"

// Product representa un producto del catálogo mayorista.
// StockQty solo se modifica vía recepciones y ventas (nunca directo salvo
// el alta/edición manual del catálogo); CostPrice lo sobrescribe la última
// recepción (last-write-wins, sin promedio ponderado).
type Product struct {
	ID        string
	Name      string
	Unit      string
	Barcode   *string // opcional, único si está presente
	CostPrice decimal.Decimal
	SalePrice decimal.Decimal
	StockQty  decimal.Decimal // invariante: nunca negativo
	MinQty    decimal.Decimal // umbral de reposición (low-stock si StockQty <= MinQty)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLowStock indica si el producto está en o por debajo del umbral de reposición.
func (p *Product) IsLowStock() bool {
	return p.StockQty.LessThanOrEqual(p.MinQty)
}
