package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrAdminNotFound     = errors.New("administrador no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrLoginTaken        = errors.New("el login ya está en uso")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
