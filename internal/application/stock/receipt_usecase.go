package stock

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mayorista-api/internal/application/dto"
	"github.com/jhoicas/mayorista-api/internal/domain"
	"github.com/jhoicas/mayorista-api/internal/domain/entity"
	"github.com/jhoicas/mayorista-api/internal/domain/repository"
)

// Límites para el listado de recepciones y ventas.
const (
	listLimitDefault = 50
	listLimitMax     = 200
)

// ReceiptUseCase registra entradas de mercancía de forma transaccional:
// encabezado + líneas, stock sumado bajo bloqueo de fila, costo del producto
// sobrescrito con el último costo recibido y un movimiento IN por línea.
type ReceiptUseCase struct {
	txRunner    TxRunner
	receiptRepo repository.ReceiptRepository
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(txRunner TxRunner, receiptRepo repository.ReceiptRepository) *ReceiptUseCase {
	return &ReceiptUseCase{txRunner: txRunner, receiptRepo: receiptRepo}
}

// Create valida el body completo antes de escribir nada y luego ejecuta toda
// la recepción dentro de una sola transacción. Si cualquier línea falla no
// queda ningún efecto (ni recepción, ni stock, ni movimientos).
func (uc *ReceiptUseCase) Create(ctx context.Context, input dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
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
		if it.CostPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	var note *string
	if input.Note != nil {
		if trimmed := strings.TrimSpace(*input.Note); trimmed != "" {
			note = &trimmed
		}
	}

	totalCost := decimal.Zero
	for _, it := range input.Items {
		totalCost = totalCost.Add(it.Qty.Mul(it.CostPrice))
	}

	now := time.Now()
	receipt := &entity.Receipt{
		ID:        uuid.New().String(),
		Note:      note,
		TotalCost: totalCost,
		CreatedAt: now,
	}

	err := uc.txRunner.RunReceipt(ctx, func(
		productRepo repository.ProductRepository,
		receiptRepo repository.ReceiptRepository,
		movRepo repository.StockMovementRepository,
	) error {
		if err := receiptRepo.Create(ctx, receipt); err != nil {
			return err
		}
		for _, in := range input.Items {
			// Bloquea la fila del producto para serializar recepciones y ventas concurrentes
			product, err := productRepo.GetForUpdate(ctx, in.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}

			item := entity.ReceiptItem{
				ID:          uuid.New().String(),
				ReceiptID:   receipt.ID,
				ProductID:   in.ProductID,
				Qty:         in.Qty,
				CostPrice:   in.CostPrice,
				LineCost:    in.Qty.Mul(in.CostPrice),
				ProductName: product.Name,
				ProductUnit: product.Unit,
			}
			if err := receiptRepo.CreateItem(ctx, &item); err != nil {
				return err
			}
			receipt.Items = append(receipt.Items, item)

			if err := productRepo.SetStock(ctx, in.ProductID, product.StockQty.Add(in.Qty)); err != nil {
				return err
			}
			// El último costo recibido gana (last-write-wins)
			if err := productRepo.SetCost(ctx, in.ProductID, in.CostPrice); err != nil {
				return err
			}

			receiptID := receipt.ID
			mov := &entity.StockMovement{
				ID:        uuid.New().String(),
				Type:      entity.MovementTypeIN,
				Qty:       in.Qty,
				Note:      entity.MovementNoteReceipt,
				ProductID: in.ProductID,
				ReceiptID: &receiptID,
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

	resp := toReceiptResponse(receipt)
	return &resp, nil
}

// List devuelve las recepciones más recientes con sus líneas expandidas.
func (uc *ReceiptUseCase) List(ctx context.Context, limit int) (*dto.ReceiptListResponse, error) {
	receipts, err := uc.receiptRepo.List(ctx, clampListLimit(limit))
	if err != nil {
		return nil, err
	}
	out := dto.ReceiptListResponse{Items: []dto.ReceiptResponse{}}
	for _, r := range receipts {
		out.Items = append(out.Items, toReceiptResponse(r))
	}
	return &out, nil
}

func clampListLimit(limit int) int {
	if limit <= 0 {
		return listLimitDefault
	}
	if limit > listLimitMax {
		return listLimitMax
	}
	return limit
}

func toReceiptResponse(r *entity.Receipt) dto.ReceiptResponse {
	resp := dto.ReceiptResponse{
		ID:        r.ID,
		Note:      r.Note,
		TotalCost: r.TotalCost,
		CreatedAt: r.CreatedAt,
		Items:     []dto.ReceiptItemResponse{},
	}
	for _, it := range r.Items {
		resp.Items = append(resp.Items, dto.ReceiptItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Name:      it.ProductName,
			Unit:      it.ProductUnit,
			Qty:       it.Qty,
			CostPrice: it.CostPrice,
			LineCost:  it.LineCost,
		})
	}
	return resp
}
