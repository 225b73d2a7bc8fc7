package entity

import "time"

// Admin es el operador único del sistema (login + password bcrypt).
type Admin struct {
	ID           string
	Login        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
