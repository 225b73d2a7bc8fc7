package dto

// LoginRequest body de POST /api/auth/login.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AdminResponse datos públicos del operador (nunca incluye el hash).
type AdminResponse struct {
	ID    string `json:"id"`
	Login string `json:"login"`
}

// LoginResponse token JWT más los datos del operador.
type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

// ChangePasswordRequest body de POST /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NextPassword    string `json:"nextPassword"`
}

// ChangeLoginRequest body de POST /api/auth/change-login.
type ChangeLoginRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NextLogin       string `json:"nextLogin"`
}
