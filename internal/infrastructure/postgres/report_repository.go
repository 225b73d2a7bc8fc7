package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mayorista-api/internal/domain/entity"
	"github.com/jhoicas/mayorista-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura para el dashboard.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// PeriodTotals agrega recepciones y ventas creadas en [from, to).
func (r *ReportRepo) PeriodTotals(ctx context.Context, from, to time.Time) (repository.PeriodTotals, error) {
	var t repository.PeriodTotals
	err := r.q.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM receipts WHERE created_at >= $1 AND created_at < $2),
			(SELECT COALESCE(SUM(total_cost), 0) FROM receipts WHERE created_at >= $1 AND created_at < $2),
			(SELECT COUNT(*) FROM sales WHERE created_at >= $1 AND created_at < $2),
			(SELECT COALESCE(SUM(total), 0) FROM sales WHERE created_at >= $1 AND created_at < $2)`,
		from, to,
	).Scan(&t.ReceiptCount, &t.ReceiptTotal, &t.SaleCount, &t.SaleTotal)
	if err != nil {
		return repository.PeriodTotals{}, fmt.Errorf("period totals: %w", err)
	}
	return t, nil
}

// StockValue devuelve la valoración del inventario a costo: Σ(stock_qty * cost_price).
func (r *ReportRepo) StockValue(ctx context.Context) (decimal.Decimal, error) {
	var v decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(stock_qty * cost_price), 0) FROM products`,
	).Scan(&v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("stock value: %w", err)
	}
	return v, nil
}

// LowStock devuelve hasta limit productos con stock en o por debajo del mínimo.
func (r *ReportRepo) LowStock(ctx context.Context, limit int) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE stock_qty <= min_qty
		 ORDER BY updated_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan low stock product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// DailyTotals agrega recepciones y ventas por día calendario dentro de [from, to).
// El corte de día usa la zona horaria de from, no la de la sesión de Postgres:
// se desplaza created_at al reloj local antes de truncar, de modo que cada
// cubeta coincide con las ventanas [medianoche, medianoche) del caso de uso.
// Los días sin actividad no aparecen; el caso de uso rellena la serie con ceros.
func (r *ReportRepo) DailyTotals(ctx context.Context, from, to time.Time) ([]repository.DayTotals, error) {
	_, offset := from.Zone()
	rows, err := r.q.Query(ctx, `
		SELECT day, COALESCE(SUM(receipt_total), 0), COALESCE(SUM(sale_total), 0)
		FROM (
			SELECT date_trunc('day', created_at AT TIME ZONE 'UTC' + make_interval(secs => $3)) AS day,
			       total_cost AS receipt_total, NULL::numeric AS sale_total
			FROM receipts WHERE created_at >= $1 AND created_at < $2
			UNION ALL
			SELECT date_trunc('day', created_at AT TIME ZONE 'UTC' + make_interval(secs => $3)) AS day,
			       NULL::numeric AS receipt_total, total AS sale_total
			FROM sales WHERE created_at >= $1 AND created_at < $2
		) t
		GROUP BY day
		ORDER BY day ASC`,
		from, to, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("daily totals: %w", err)
	}
	defer rows.Close()
	var list []repository.DayTotals
	for rows.Next() {
		var d repository.DayTotals
		if err := rows.Scan(&d.Day, &d.ReceiptsTotal, &d.SalesTotal); err != nil {
			return nil, fmt.Errorf("scan day totals: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// TopProducts agrupa las líneas de venta por producto dentro de [from, to),
// ordenando por cantidad vendida y desempatando por ingresos.
func (r *ReportRepo) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.TopProductResult, error) {
	rows, err := r.q.Query(ctx, `
		SELECT i.product_id, p.name, p.unit, SUM(i.qty) AS qty, SUM(i.line_total) AS revenue
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		JOIN products p ON p.id = i.product_id
		WHERE s.created_at >= $1 AND s.created_at < $2
		GROUP BY i.product_id, p.name, p.unit
		ORDER BY qty DESC, revenue DESC
		LIMIT $3`,
		from, to, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.Name, &t.Unit, &t.Qty, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// History devuelve el feed mezclado de recepciones y ventas, más recientes primero.
func (r *ReportRepo) History(ctx context.Context, limit int) ([]repository.HistoryEntry, error) {
	rows, err := r.q.Query(ctx, `
		SELECT kind, id, total, item_count, created_at FROM (
			SELECT 'receipt' AS kind, r.id, r.total_cost AS total,
			       (SELECT COUNT(*) FROM receipt_items i WHERE i.receipt_id = r.id) AS item_count,
			       r.created_at
			FROM receipts r
			UNION ALL
			SELECT 'sale' AS kind, s.id, s.total,
			       (SELECT COUNT(*) FROM sale_items i WHERE i.sale_id = s.id) AS item_count,
			       s.created_at
			FROM sales s
		) t
		ORDER BY created_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	defer rows.Close()
	var list []repository.HistoryEntry
	for rows.Next() {
		var e repository.HistoryEntry
		if err := rows.Scan(&e.Kind, &e.ID, &e.Total, &e.ItemCount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
