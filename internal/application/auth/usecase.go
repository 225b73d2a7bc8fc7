package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/mayorista-api/internal/application/dto"
	"github.com/jhoicas/mayorista-api/internal/domain"
	"github.com/jhoicas/mayorista-api/internal/domain/repository"
	"github.com/jhoicas/mayorista-api/pkg/jwt"
)

// Longitud mínima de contraseña al cambiarla.
const minPasswordLen = 6

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación del operador único: login,
// cambio de contraseña y cambio de login.
type AuthUseCase struct {
	adminRepo repository.AdminRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(adminRepo repository.AdminRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{adminRepo: adminRepo, jwtCfg: jwtCfg}
}

// Login verifica login/password y genera el JWT. Login desconocido y
// contraseña incorrecta devuelven el mismo error, sin distinguir cuál falló.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	login := strings.TrimSpace(in.Login)
	if login == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	admin, err := uc.adminRepo.GetByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Admin: dto.AdminResponse{ID: admin.ID, Login: admin.Login},
	}, nil
}

// ChangePassword verifica la contraseña actual y guarda el hash de la nueva.
// La nueva debe tener al menos seis caracteres.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, adminID string, in dto.ChangePasswordRequest) error {
	if len(in.NextPassword) < minPasswordLen {
		return domain.ErrInvalidInput
	}
	admin, err := uc.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return domain.ErrAdminNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.adminRepo.UpdatePassword(ctx, adminID, string(hash))
}

// ChangeLogin verifica la contraseña actual y cambia el login. Devuelve
// ErrLoginTaken si el nuevo login ya está en uso.
func (uc *AuthUseCase) ChangeLogin(ctx context.Context, adminID string, in dto.ChangeLoginRequest) (*dto.AdminResponse, error) {
	next := strings.TrimSpace(in.NextLogin)
	if next == "" {
		return nil, domain.ErrInvalidInput
	}
	admin, err := uc.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrAdminNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.adminRepo.UpdateLogin(ctx, adminID, next); err != nil {
		return nil, err
	}
	return &dto.AdminResponse{ID: admin.ID, Login: next}, nil
}
