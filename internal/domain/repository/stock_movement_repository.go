package repository

import (
	"context"

	"github.com/jhoicas/mayorista-api/internal/domain/entity"
)

// StockMovementRepository define el puerto para el libro de stock.
// Append-only: solo Create y lecturas; los movimientos nunca se modifican.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListByProduct devuelve movimientos de un producto, más recientes primero.
	ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.StockMovement, error)
}
