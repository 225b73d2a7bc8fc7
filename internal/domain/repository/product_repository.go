package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mayorista-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetForUpdate devuelven (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT ... FOR UPDATE).
	// Solo tiene sentido dentro de una transacción (ver stock.TxRunner).
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// List devuelve productos ordenados por creación descendente.
	// search filtra por nombre o código de barras (subcadena, sin acentos).
	List(ctx context.Context, search string) ([]*entity.Product, error)
	// Update escribe todos los campos mutables del producto de forma atómica
	// (una sola sentencia), incluidas las correcciones manuales de stock y costo.
	Update(ctx context.Context, product *entity.Product) error
	// SetStock fija la cantidad absoluta de stock (calculada bajo bloqueo de fila).
	SetStock(ctx context.Context, id string, qty decimal.Decimal) error
	// SetCost sobrescribe el costo del producto (last-write-wins en recepciones).
	SetCost(ctx context.Context, id string, cost decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}
