package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/mayorista-api/internal/domain"
	"github.com/jhoicas/mayorista-api/internal/domain/entity"
	"github.com/jhoicas/mayorista-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación del puerto AdminRepository sobre PostgreSQL.
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador de persistencia para el operador.
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

// Create persiste un nuevo operador.
func (r *AdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO admins (id, login, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		admin.ID, admin.Login, admin.PasswordHash, admin.CreatedAt, admin.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrLoginTaken
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByID obtiene un operador por ID. Devuelve (nil, nil) si no existe.
func (r *AdminRepo) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	var a entity.Admin
	err := r.q.QueryRow(ctx,
		`SELECT id, login, password_hash, created_at, updated_at FROM admins WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Login, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}

// GetByLogin obtiene un operador por login. Devuelve (nil, nil) si no existe.
func (r *AdminRepo) GetByLogin(ctx context.Context, login string) (*entity.Admin, error) {
	var a entity.Admin
	err := r.q.QueryRow(ctx,
		`SELECT id, login, password_hash, created_at, updated_at FROM admins WHERE login = $1`,
		login,
	).Scan(&a.ID, &a.Login, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin by login: %w", err)
	}
	return &a, nil
}

// UpdatePassword reemplaza el hash de contraseña del operador.
func (r *AdminRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE admins SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("update admin password: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

// UpdateLogin cambia el login del operador. Devuelve ErrLoginTaken si ya existe.
func (r *AdminRepo) UpdateLogin(ctx context.Context, id, login string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE admins SET login = $2, updated_at = now() WHERE id = $1`,
		id, login,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrLoginTaken
		}
		return fmt.Errorf("update admin login: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}
