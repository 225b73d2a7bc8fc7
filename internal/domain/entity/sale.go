package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta (salida de mercancía).
// Subtotal y Total son idénticos hoy: no hay capa de descuentos ni impuestos.
// Inmutable una vez creada.
type Sale struct {
	ID        string
	Subtotal  decimal.Decimal
	Total     decimal.Decimal
	CreatedAt time.Time
	Items     []SaleItem
}

// SaleItem línea de una venta. LineTotal se calcula y persiste
// (Qty * Price) al momento de crear la venta.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Qty       decimal.Decimal // > 0
	Price     decimal.Decimal // >= 0, precio unitario al momento de vender
	LineTotal decimal.Decimal

	// Campos del producto expandidos para el ticket (no persisten en sale_items).
	ProductName string
	ProductUnit string
}
