package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de una venta entrante.
type SaleItemRequest struct {
	ProductID string          `json:"productId"`
	Qty       decimal.Decimal `json:"qty"`
	Price     decimal.Decimal `json:"price"`
}

// CreateSaleRequest body de POST /api/sales.
type CreateSaleRequest struct {
	Items []SaleItemRequest `json:"items"`
}

// SaleItemResponse línea persistida, expandida con nombre y unidad del
// producto para el ticket impreso.
type SaleItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Qty       decimal.Decimal `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// SaleResponse venta persistida con sus líneas.
type SaleResponse struct {
	ID        string             `json:"id"`
	Subtotal  decimal.Decimal    `json:"subtotal"`
	Total     decimal.Decimal    `json:"total"`
	CreatedAt time.Time          `json:"createdAt"`
	Items     []SaleItemResponse `json:"items"`
}

// SaleListResponse lista de ventas, más recientes primero.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
}
