package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Los nombres de campo siguen el contrato del cliente de escritorio (camelCase).
type CreateProductRequest struct {
	Name      string           `json:"name"`
	Unit      string           `json:"unit"`
	Barcode   *string          `json:"barcode"`
	CostPrice *decimal.Decimal `json:"costPrice"`
	SalePrice *decimal.Decimal `json:"salePrice"`
	StockQty  *decimal.Decimal `json:"stockQty"`
	MinQty    *decimal.Decimal `json:"minQty"`
}

// UpdateProductRequest entrada para actualizar un producto (parcial).
// Barcode usa OptionalString: null explícito limpia el código de barras.
type UpdateProductRequest struct {
	Name      *string          `json:"name"`
	Unit      *string          `json:"unit"`
	Barcode   OptionalString   `json:"barcode"`
	CostPrice *decimal.Decimal `json:"costPrice"`
	SalePrice *decimal.Decimal `json:"salePrice"`
	StockQty  *decimal.Decimal `json:"stockQty"`
	MinQty    *decimal.Decimal `json:"minQty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Barcode   *string         `json:"barcode"`
	CostPrice decimal.Decimal `json:"costPrice"`
	SalePrice decimal.Decimal `json:"salePrice"`
	StockQty  decimal.Decimal `json:"stockQty"`
	MinQty    decimal.Decimal `json:"minQty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
