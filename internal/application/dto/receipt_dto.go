package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptItemRequest línea de una recepción entrante.
type ReceiptItemRequest struct {
	ProductID string          `json:"productId"`
	Qty       decimal.Decimal `json:"qty"`
	CostPrice decimal.Decimal `json:"costPrice"`
}

// CreateReceiptRequest body de POST /api/receipts.
type CreateReceiptRequest struct {
	Note  *string              `json:"note"`
	Items []ReceiptItemRequest `json:"items"`
}

// ReceiptItemResponse línea persistida, expandida con datos del producto.
type ReceiptItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Qty       decimal.Decimal `json:"qty"`
	CostPrice decimal.Decimal `json:"costPrice"`
	LineCost  decimal.Decimal `json:"lineCost"`
}

// ReceiptResponse recepción persistida con sus líneas.
type ReceiptResponse struct {
	ID        string                `json:"id"`
	Note      *string               `json:"note"`
	TotalCost decimal.Decimal       `json:"totalCost"`
	CreatedAt time.Time             `json:"createdAt"`
	Items     []ReceiptItemResponse `json:"items"`
}

// ReceiptListResponse lista de recepciones, más recientes primero.
type ReceiptListResponse struct {
	Items []ReceiptResponse `json:"items"`
}
