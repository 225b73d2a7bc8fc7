package repository

import (
	"context"

	"github.com/jhoicas/mayorista-api/internal/domain/entity"
)

// AdminRepository define el puerto de persistencia para el operador del sistema.
// GetByID y GetByLogin devuelven (nil, nil) si no existe.
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByID(ctx context.Context, id string) (*entity.Admin, error)
	GetByLogin(ctx context.Context, login string) (*entity.Admin, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateLogin(ctx context.Context, id, login string) error
}
