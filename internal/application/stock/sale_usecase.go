package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mayorista-api/internal/application/dto"
	"github.com/jhoicas/mayorista-api/internal/domain"
	"github.com/jhoicas/mayorista-api/internal/domain/entity"
	"github.com/jhoicas/mayorista-api/internal/domain/repository"
)

// SaleUseCase registra ventas de forma transaccional: verifica stock bajo
// bloqueo de fila, descuenta las cantidades y deja un movimiento OUT por línea.
// El stock nunca queda negativo por una venta.
type SaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// Create valida el body completo antes de escribir nada y ejecuta la venta en
// una sola transacción. Stock insuficiente en cualquier línea aborta todo sin
// efectos parciales.
func (uc *SaleUseCase) Create(ctx context.Context, input dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range input.Items {
		if it.ProductID == "" {
			return nil, domain.ErrInvalidInput
		}
		if !it.Qty.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if it.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	subtotal := decimal.Zero
	for _, it := range input.Items {
		subtotal = subtotal.Add(it.Qty.Mul(it.Price))
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		Subtotal:  subtotal,
		Total:     subtotal,
		CreatedAt: now,
	}

	err := uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		movRepo repository.StockMovementRepository,
	) error {
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		for _, in := range input.Items {
			// Bloquea la fila del producto; ventas concurrentes sobre el mismo
			// producto se serializan aquí
			product, err := productRepo.GetForUpdate(ctx, in.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.StockQty.LessThan(in.Qty) {
				return domain.ErrInsufficientStock
			}

			item := entity.SaleItem{
				ID:          uuid.New().String(),
				SaleID:      sale.ID,
				ProductID:   in.ProductID,
				Qty:         in.Qty,
				Price:       in.Price,
				LineTotal:   in.Qty.Mul(in.Price),
				ProductName: product.Name,
				ProductUnit: product.Unit,
			}
			if err := saleRepo.CreateItem(ctx, &item); err != nil {
				return err
			}
			sale.Items = append(sale.Items, item)

			if err := productRepo.SetStock(ctx, in.ProductID, product.StockQty.Sub(in.Qty)); err != nil {
				return err
			}

			saleID := sale.ID
			mov := &entity.StockMovement{
				ID:        uuid.New().String(),
				Type:      entity.MovementTypeOUT,
				Qty:       in.Qty,
				Note:      entity.MovementNoteSale,
				ProductID: in.ProductID,
				SaleID:    &saleID,
				CreatedAt: now,
			}
			if err := movRepo.Create(ctx, mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toSaleResponse(sale)
	return &resp, nil
}

// Get devuelve una venta con sus líneas expandidas (para el ticket PDF).
func (uc *SaleUseCase) Get(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSaleResponse(sale)
	return &resp, nil
}

// List devuelve las ventas más recientes con sus líneas expandidas.
func (uc *SaleUseCase) List(ctx context.Context, limit int) (*dto.SaleListResponse, error) {
	sales, err := uc.saleRepo.List(ctx, clampListLimit(limit))
	if err != nil {
		return nil, err
	}
	out := dto.SaleListResponse{Items: []dto.SaleResponse{}}
	for _, s := range sales {
		out.Items = append(out.Items, toSaleResponse(s))
	}
	return &out, nil
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	resp := dto.SaleResponse{
		ID:        s.ID,
		Subtotal:  s.Subtotal,
		Total:     s.Total,
		CreatedAt: s.CreatedAt,
		Items:     []dto.SaleItemResponse{},
	}
	for _, it := range s.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Name:      it.ProductName,
			Unit:      it.ProductUnit,
			Qty:       it.Qty,
			Price:     it.Price,
			LineTotal: it.LineTotal,
		})
	}
	return resp
}
