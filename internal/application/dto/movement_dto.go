package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementResponse un asiento del libro de stock. Exactamente uno de
// receiptId/saleId viene informado según el origen del movimiento.
type MovementResponse struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"` // "IN" | "OUT"
	Qty       decimal.Decimal `json:"qty"`
	Note      string          `json:"note"`
	ProductID string          `json:"productId"`
	ReceiptID *string         `json:"receiptId"`
	SaleID    *string         `json:"saleId"`
	CreatedAt time.Time       `json:"createdAt"`
}

// MovementListResponse movimientos de un producto, más recientes primero.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
}
