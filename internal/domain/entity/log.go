package entity

import "time"

// Acciones de auditoría (enumeración cerrada). Extender solo agregando
// etiquetas nuevas, nunca reutilizando las existentes.
const (
	ActionUserCreated         = "USER_CREATED"
	ActionUserUpdated         = "USER_UPDATED"
	ActionUserDeleted         = "USER_DELETED"
	ActionUserPasswordReset   = "USER_PASSWORD_RESET"
	ActionUserAdminGranted    = "USER_ADMIN_GRANTED"
	ActionUserAdminRevoked    = "USER_ADMIN_REVOKED"
	ActionUserLogin           = "USER_LOGIN"
	ActionUserLoginFailed     = "USER_LOGIN_FAILED"
	ActionUserPasswordChanged = "USER_PASSWORD_CHANGED"
	ActionProductCreated      = "PRODUCT_CREATED"
	ActionQuantityAdded       = "PRODUCT_QUANTITY_ADDED"
	ActionQuantityRemoved     = "PRODUCT_QUANTITY_REMOVED"
	ActionProductInstalled    = "PRODUCT_INSTALLED"
	ActionAssetCreated        = "ASSET_CREATED"
	ActionAssetDeleted        = "ASSET_DELETED"
	ActionDescriptorCreated   = "DESCRIPTOR_CREATED"
	ActionDescriptorDeleted   = "DESCRIPTOR_DELETED"
)

// LogEntry es un registro de auditoría inmutable: quién cambió qué, cuándo,
// desde dónde y por qué. UserID es nil solo para fallos previos a la
// autenticación (login con usuario inexistente).
type LogEntry struct {
	ID        string
	Timestamp time.Time
	Action    string
	UserID    *string
	Details   map[string]any // hechos específicos de la acción, se persisten tal cual
	IPAddress string
	UserAgent string
	// Username del actor, resuelto en la consulta (solo lectura).
	Username string
}

// LogFilter filtros de consulta del historial.
type LogFilter struct {
	UserID    string
	Action    string
	StartDate *time.Time
	EndDate   *time.Time
}
