package dto

import "github.com/shopspring/decimal"

// SummaryResponse respuesta de GET /api/reports/summary (resumen del día).
type SummaryResponse struct {
	Today TodaySummary `json:"today"`
	Stock StockSummary `json:"stock"`
}

// TodaySummary totales del día en curso (corte a medianoche local).
type TodaySummary struct {
	ReceiptCount int64           `json:"receiptCount"`
	ReceiptTotal decimal.Decimal `json:"receiptTotal"`
	SaleCount    int64           `json:"saleCount"`
	SaleTotal    decimal.Decimal `json:"saleTotal"`
}

// StockSummary valor del inventario y productos en umbral de reposición.
type StockSummary struct {
	StockValue decimal.Decimal   `json:"stockValue"`
	LowStock   []LowStockProduct `json:"lowStock"`
}

// LowStockProduct producto con stockQty <= minQty (máximo 8 en el resumen).
type LowStockProduct struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	StockQty  decimal.Decimal `json:"stockQty"`
	MinQty    decimal.Decimal `json:"minQty"`
	CostPrice decimal.Decimal `json:"costPrice"`
}

// RangeSummaryResponse respuesta de GET /api/reports/summary-range.
type RangeSummaryResponse struct {
	From   string      `json:"from"`
	To     string      `json:"to"`
	Totals RangeTotals `json:"totals"`
	Days   []DayPoint  `json:"days"`
}

// RangeTotals agregados del rango completo.
type RangeTotals struct {
	ReceiptsTotal decimal.Decimal `json:"receiptsTotal"`
	ReceiptsCount int64           `json:"receiptsCount"`
	SalesTotal    decimal.Decimal `json:"salesTotal"`
	SalesCount    int64           `json:"salesCount"`
}

// DayPoint un punto por día del rango (para sparklines del cliente).
type DayPoint struct {
	Date          string          `json:"date"` // YYYY-MM-DD
	ReceiptsTotal decimal.Decimal `json:"receiptsTotal"`
	SalesTotal    decimal.Decimal `json:"salesTotal"`
}

// TopProductsResponse respuesta de GET /api/reports/top-products.
type TopProductsResponse struct {
	From  string           `json:"from"`
	To    string           `json:"to"`
	Items []TopProductItem `json:"items"`
}

// TopProductItem producto rankeado por cantidad vendida en el rango.
type TopProductItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Qty       decimal.Decimal `json:"qty"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// HistoryResponse respuesta de GET /api/reports/history.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

// HistoryItem entrada del feed: una recepción o una venta.
type HistoryItem struct {
	Kind      string          `json:"kind"` // "receipt" | "sale"
	ID        string          `json:"id"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int64           `json:"itemCount"`
	CreatedAt string          `json:"createdAt"` // RFC 3339
}
