package repository

import (
	"context"

	"github.com/jhoicas/mayorista-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
// Las ventas son inmutables: no hay Update ni Delete.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	CreateItem(ctx context.Context, item *entity.SaleItem) error
	// GetByID devuelve la venta con líneas y producto expandidos, o (nil, nil).
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List devuelve ventas ordenadas por creación descendente, con sus líneas
	// y el nombre/unidad del producto expandidos.
	List(ctx context.Context, limit int) ([]*entity.Sale, error)
}
