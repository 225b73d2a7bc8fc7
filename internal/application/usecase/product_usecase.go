package usecase

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

// ProductUseCase casos de uso CRUD para productos del catálogo.
type ProductUseCase struct {
	repo    repository.ProductRepository
	movRepo repository.StockMovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, movRepo repository.StockMovementRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, movRepo: movRepo}
}

// Create crea un nuevo producto. Unit por defecto es "DONA"; los campos
// numéricos ausentes inician en cero y los negativos se rechazan.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = entity.UnitDefault
	}
	var barcode *string
	if in.Barcode != nil {
		if trimmed := strings.TrimSpace(*in.Barcode); trimmed != "" {
			barcode = &trimmed
		}
	}

	costPrice, err := nonNegative(in.CostPrice)
	if err != nil {
		return nil, err
	}
	salePrice, err := nonNegative(in.SalePrice)
	if err != nil {
		return nil, err
	}
	stockQty, err := nonNegative(in.StockQty)
	if err != nil {
		return nil, err
	}
	minQty, err := nonNegative(in.MinQty)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      name,
		Unit:      unit,
		Barcode:   barcode,
		CostPrice: costPrice,
		SalePrice: salePrice,
		StockQty:  stockQty,
		MinQty:    minQty,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto de forma parcial. Barcode con null explícito
// limpia el código de barras; ausente lo deja como está.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Unit != nil {
		if unit := strings.TrimSpace(*in.Unit); unit != "" {
			product.Unit = unit
		}
	}
	if in.Barcode.Set {
		if in.Barcode.Value == nil {
			product.Barcode = nil
		} else if trimmed := strings.TrimSpace(*in.Barcode.Value); trimmed == "" {
			product.Barcode = nil
		} else {
			product.Barcode = &trimmed
		}
	}
	if in.SalePrice != nil {
		if in.SalePrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.SalePrice = *in.SalePrice
	}
	if in.MinQty != nil {
		if in.MinQty.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.MinQty = *in.MinQty
	}
	// Correcciones manuales de costo y stock fuera de los flujos de entrada/venta
	if in.CostPrice != nil {
		if in.CostPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.CostPrice = *in.CostPrice
	}
	if in.StockQty != nil {
		if in.StockQty.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.StockQty = *in.StockQty
	}

	// Un solo UPDATE: la edición se aplica completa o no se aplica
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con búsqueda opcional por nombre o código de barras.
func (uc *ProductUseCase) List(ctx context.Context, search string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// Movements devuelve el libro de movimientos de un producto, más recientes primero.
func (uc *ProductUseCase) Movements(ctx context.Context, id string, limit int) (*dto.MovementListResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	movs, err := uc.movRepo.ListByProduct(ctx, id, limit)
	if err != nil {
		return nil, err
	}
	out := dto.MovementListResponse{Items: []dto.MovementResponse{}}
	for _, m := range movs {
		out.Items = append(out.Items, dto.MovementResponse{
			ID:        m.ID,
			Type:      m.Type,
			Qty:       m.Qty,
			Note:      m.Note,
			ProductID: m.ProductID,
			ReceiptID: m.ReceiptID,
			SaleID:    m.SaleID,
			CreatedAt: m.CreatedAt,
		})
	}
	return &out, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func nonNegative(d *decimal.Decimal) (decimal.Decimal, error) {
	if d == nil {
		return decimal.Zero, nil
	}
	if d.LessThan(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return *d, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Unit:      p.Unit,
		Barcode:   p.Barcode,
		CostPrice: p.CostPrice,
		SalePrice: p.SalePrice,
		StockQty:  p.StockQty,
		MinQty:    p.MinQty,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
