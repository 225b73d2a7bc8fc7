package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de stock.
const (
	MovementTypeIN  = "IN"  // entrada (recepción)
	MovementTypeOUT = "OUT" // salida (venta)
)

// Notas fijas que acompañan cada movimiento según su origen.
const (
	MovementNoteReceipt = "Receipt (Qabul)"
	MovementNoteSale    = "Sale (Sotuv)"
)

// StockMovement es una entrada del libro de stock: registro inmutable de un
// cambio de cantidad, referenciando exactamente una de {Receipt, Sale}.
// Solo se crea como efecto de los flujos de recepción y venta; nunca se
// actualiza ni se borra. Es la pista de auditoría que reconcilia
// Product.StockQty con su historia.
type StockMovement struct {
	ID        string
	Type      string          // IN | OUT
	Qty       decimal.Decimal // > 0 siempre; el signo lo da Type
	Note      string
	ProductID string
	ReceiptID *string // mutuamente excluyente con SaleID
	SaleID    *string
	CreatedAt time.Time
}
