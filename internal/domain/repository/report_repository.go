package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mayorista-api/internal/domain/entity"
)

// PeriodTotals agregados de un período: conteo y suma de recepciones / ventas.
type PeriodTotals struct {
	ReceiptCount int64
	ReceiptTotal decimal.Decimal
	SaleCount    int64
	SaleTotal    decimal.Decimal
}

// DayTotals punto diario para la serie del rango (sparkline del cliente).
type DayTotals struct {
	Day           time.Time
	ReceiptsTotal decimal.Decimal
	SalesTotal    decimal.Decimal
}

// TopProductResult agregado de ventas por producto dentro de un rango.
type TopProductResult struct {
	ProductID string
	Name      string
	Unit      string
	Qty       decimal.Decimal
	Revenue   decimal.Decimal
}

// HistoryEntry entrada del feed cronológico inverso (recepción o venta).
type HistoryEntry struct {
	Kind      string // "receipt" | "sale"
	ID        string
	Total     decimal.Decimal
	ItemCount int64
	CreatedAt time.Time
}

// ReportRepository consultas de solo lectura para los reportes del dashboard.
// Nunca muta Product, Receipt, Sale ni StockMovement.
// Los rangos [from, to) son semiabiertos: from inclusivo, to exclusivo.
type ReportRepository interface {
	// PeriodTotals agrega recepciones y ventas creadas en [from, to).
	PeriodTotals(ctx context.Context, from, to time.Time) (PeriodTotals, error)
	// StockValue devuelve Σ(stock_qty * cost_price) sobre todos los productos.
	StockValue(ctx context.Context) (decimal.Decimal, error)
	// LowStock devuelve hasta limit productos con stock_qty <= min_qty,
	// ordenados por actualización más reciente.
	LowStock(ctx context.Context, limit int) ([]*entity.Product, error)
	// DailyTotals agrega por día calendario dentro de [from, to). El día se
	// corta en la zona horaria de from, de modo que cada Day identifica la
	// misma fecha que las ventanas de medianoche local del llamador. Los días
	// sin actividad no aparecen (el caso de uso rellena con ceros).
	DailyTotals(ctx context.Context, from, to time.Time) ([]DayTotals, error)
	// TopProducts agrupa líneas de venta por producto en [from, to), ordena por
	// cantidad desc y desempata por ingresos desc.
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProductResult, error)
	// History devuelve el feed mezclado de recepciones y ventas, más recientes primero.
	History(ctx context.Context, limit int) ([]HistoryEntry, error)
}
