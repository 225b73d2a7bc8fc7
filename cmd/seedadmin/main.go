// seedadmin crea o actualiza la credencial del operador único.
//
// Uso: go run ./cmd/seedadmin -login admin -password <contraseña>
// Si el login ya existe solo reemplaza la contraseña.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/mayorista-api/internal/domain/entity"
	"github.com/jhoicas/mayorista-api/internal/infrastructure/postgres"
	"github.com/jhoicas/mayorista-api/pkg/config"
)

func main() {
	login := flag.String("login", "admin", "login del operador")
	password := flag.String("password", "", "contraseña (mínimo 6 caracteres)")
	flag.Parse()

	if len(*password) < 6 {
		fmt.Fprintln(os.Stderr, "la contraseña debe tener al menos 6 caracteres")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear contraseña: %v\n", err)
		os.Exit(1)
	}

	repo := postgres.NewAdminRepository(pool)
	existing, err := repo.GetByLogin(ctx, *login)
	if err != nil {
		fmt.Fprintf(os.Stderr, "buscar operador: %v\n", err)
		os.Exit(1)
	}

	if existing != nil {
		if err := repo.UpdatePassword(ctx, existing.ID, string(hash)); err != nil {
			fmt.Fprintf(os.Stderr, "actualizar contraseña: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("contraseña actualizada para %q\n", *login)
		return
	}

	now := time.Now()
	admin := &entity.Admin{
		ID:           uuid.New().String(),
		Login:        *login,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, admin); err != nil {
		fmt.Fprintf(os.Stderr, "crear operador: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("operador %q creado\n", *login)
}
