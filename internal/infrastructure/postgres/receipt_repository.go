package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/mayorista-api/internal/domain/entity"
	"github.com/jhoicas/mayorista-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación del puerto ReceiptRepository sobre PostgreSQL (usable con pool o tx).
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador de persistencia para recepciones.
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create persiste el encabezado de una recepción.
func (r *ReceiptRepo) Create(ctx context.Context, receipt *entity.Receipt) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO receipts (id, note, total_cost, created_at) VALUES ($1, $2, $3, $4)`,
		receipt.ID, receipt.Note, receipt.TotalCost, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de recepción.
func (r *ReceiptRepo) CreateItem(ctx context.Context, item *entity.ReceiptItem) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO receipt_items (id, receipt_id, product_id, qty, cost_price, line_cost)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.ReceiptID, item.ProductID, item.Qty, item.CostPrice, item.LineCost,
	)
	if err != nil {
		return fmt.Errorf("insert receipt item: %w", err)
	}
	return nil
}

// List devuelve recepciones más recientes primero, con líneas y producto expandidos.
func (r *ReceiptRepo) List(ctx context.Context, limit int) ([]*entity.Receipt, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, note, total_cost, created_at FROM receipts ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Receipt
	ids := []string{}
	byID := map[string]*entity.Receipt{}
	for rows.Next() {
		var rc entity.Receipt
		if err := rows.Scan(&rc.ID, &rc.Note, &rc.TotalCost, &rc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		rc.Items = []entity.ReceiptItem{}
		list = append(list, &rc)
		ids = append(ids, rc.ID)
		byID[rc.ID] = &rc
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	itemRows, err := r.q.Query(ctx,
		`SELECT i.id, i.receipt_id, i.product_id, i.qty, i.cost_price, i.line_cost, p.name, p.unit
		 FROM receipt_items i
		 JOIN products p ON p.id = i.product_id
		 WHERE i.receipt_id = ANY($1)
		 ORDER BY i.id ASC`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("list receipt items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var it entity.ReceiptItem
		if err := itemRows.Scan(&it.ID, &it.ReceiptID, &it.ProductID, &it.Qty, &it.CostPrice, &it.LineCost, &it.ProductName, &it.ProductUnit); err != nil {
			return nil, fmt.Errorf("scan receipt item: %w", err)
		}
		if rc, ok := byID[it.ReceiptID]; ok {
			rc.Items = append(rc.Items, it)
		}
	}
	return list, itemRows.Err()
}
