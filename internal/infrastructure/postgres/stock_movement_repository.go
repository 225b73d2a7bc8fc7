package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/mayorista-api/internal/domain/entity"
	"github.com/jhoicas/mayorista-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del puerto StockMovementRepository sobre PostgreSQL.
// El libro de movimientos es append-only: no hay UPDATE ni DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador del libro de stock.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create registra un movimiento. Exactamente uno de ReceiptID/SaleID debe venir informado.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO stock_movements (id, type, qty, note, product_id, receipt_id, sale_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		movement.ID, movement.Type, movement.Qty, movement.Note,
		movement.ProductID, movement.ReceiptID, movement.SaleID, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByProduct devuelve movimientos de un producto, más recientes primero.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, type, qty, note, product_id, receipt_id, sale_id, created_at
		 FROM stock_movements WHERE product_id = $1 ORDER BY created_at DESC LIMIT $2`,
		productID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.Type, &m.Qty, &m.Note, &m.ProductID, &m.ReceiptID, &m.SaleID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
