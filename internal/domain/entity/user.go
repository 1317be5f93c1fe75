package entity

import "time"

// DefaultAdminUsername es el usuario de arranque. Se crea al iniciar si no
// existe y queda marcado como protegido: no puede renombrarse, eliminarse,
// perder el flag de admin ni recibir reset de contraseña.
const DefaultAdminUsername = "Administrador"

// User representa un usuario del sistema.
type User struct {
	ID                  string
	Username            string
	PasswordHash        string // bcrypt hash, nunca en texto plano después de persistir
	IsAdmin             bool
	Protected           bool // true solo para el usuario de arranque
	ForcePasswordChange bool
	LastLogin           *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
