package stock

import (
	"context"

	"github.com/jhoicas/mayorista-api/internal/domain/repository"
)

// TxRunner abre una transacción y ejecuta el callback con repositorios atados
// a ella. Commit si fn devuelve nil, Rollback en caso contrario.
type TxRunner interface {
	RunReceipt(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		receiptRepo repository.ReceiptRepository,
		movRepo repository.StockMovementRepository,
	) error) error

	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
