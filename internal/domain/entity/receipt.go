package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt representa una recepción de mercancía (entrada de proveedor).
// Inmutable una vez creada: no existe update ni delete.
type Receipt struct {
	ID        string
	Note      *string
	TotalCost decimal.Decimal // = suma de LineCost de los items
	CreatedAt time.Time
	Items     []ReceiptItem
}

// ReceiptItem línea de una recepción. LineCost se calcula y persiste
// (Qty * CostPrice) al momento de crear la recepción.
type ReceiptItem struct {
	ID        string
	ReceiptID string
	ProductID string
	Qty       decimal.Decimal // > 0
	CostPrice decimal.Decimal // >= 0, costo unitario al momento de recibir
	LineCost  decimal.Decimal

	// Campos del producto expandidos para listados (no persisten en receipt_items).
	ProductName string
	ProductUnit string
}
