package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/mayorista-api/internal/domain/entity"
	"github.com/jhoicas/mayorista-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste el encabezado de una venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO sales (id, subtotal, total, created_at) VALUES ($1, $2, $3, $4)`,
		sale.ID, sale.Subtotal, sale.Total, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta.
func (r *SaleRepo) CreateItem(ctx context.Context, item *entity.SaleItem) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO sale_items (id, sale_id, product_id, qty, price, line_total)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.SaleID, item.ProductID, item.Qty, item.Price, item.LineTotal,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID devuelve la venta con líneas y producto expandidos, o (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(ctx,
		`SELECT id, subtotal, total, created_at FROM sales WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Subtotal, &s.Total, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	s.Items = []entity.SaleItem{}

	rows, err := r.q.Query(ctx,
		`SELECT i.id, i.sale_id, i.product_id, i.qty, i.price, i.line_total, p.name, p.unit
		 FROM sale_items i
		 JOIN products p ON p.id = i.product_id
		 WHERE i.sale_id = $1
		 ORDER BY i.id ASC`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Qty, &it.Price, &it.LineTotal, &it.ProductName, &it.ProductUnit); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		s.Items = append(s.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &s, nil
}

// List devuelve ventas más recientes primero, con líneas y producto expandidos.
func (r *SaleRepo) List(ctx context.Context, limit int) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, subtotal, total, created_at FROM sales ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	ids := []string{}
	byID := map[string]*entity.Sale{}
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Subtotal, &s.Total, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		s.Items = []entity.SaleItem{}
		list = append(list, &s)
		ids = append(ids, s.ID)
		byID[s.ID] = &s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	itemRows, err := r.q.Query(ctx,
		`SELECT i.id, i.sale_id, i.product_id, i.qty, i.price, i.line_total, p.name, p.unit
		 FROM sale_items i
		 JOIN products p ON p.id = i.product_id
		 WHERE i.sale_id = ANY($1)
		 ORDER BY i.id ASC`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var it entity.SaleItem
		if err := itemRows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Qty, &it.Price, &it.LineTotal, &it.ProductName, &it.ProductUnit); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		if s, ok := byID[it.SaleID]; ok {
			s.Items = append(s.Items, it)
		}
	}
	return list, itemRows.Err()
}
