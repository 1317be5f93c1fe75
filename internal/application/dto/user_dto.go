package dto

import "time"

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest entrada para cambio de contraseña propia.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username            string `json:"username"`
	Password            string `json:"password"`
	IsAdmin             bool   `json:"is_admin"`
	ForcePasswordChange *bool  `json:"force_password_change"` // default true
}

// UpdateUserRequest entrada para renombrar o cambiar el flag admin.
type UpdateUserRequest struct {
	Username string `json:"username"`
	IsAdmin  *bool  `json:"is_admin"`
}

// ResetPasswordRequest entrada para reset administrativo de contraseña.
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID                  string     `json:"id"`
	Username            string     `json:"username"`
	IsAdmin             bool       `json:"is_admin"`
	ForcePasswordChange bool       `json:"force_password_change"`
	LastLogin           *time.Time `json:"last_login,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}
