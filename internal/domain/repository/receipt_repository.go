package repository

import (
	"context"

	"github.com/jhoicas/mayorista-api/internal/domain/entity"
)

// ReceiptRepository define el puerto de persistencia para Receipt.
// Las recepciones son inmutables: no hay Update ni Delete.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.Receipt) error
	CreateItem(ctx context.Context, item *entity.ReceiptItem) error
	// List devuelve recepciones ordenadas por creación descendente, con sus
	// líneas y el nombre/unidad del producto expandidos.
	List(ctx context.Context, limit int) ([]*entity.Receipt, error)
}
