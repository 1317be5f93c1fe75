package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El mapeo a códigos HTTP vive en internal/interfaces/http.
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidCategory     = errors.New("categoría de producto inválida")
	ErrInvalidCredentials  = errors.New("credenciales inválidas")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrProtectedUser       = errors.New("el usuario Administrador no puede ser modificado")
	ErrDuplicateUsername   = errors.New("el nombre de usuario ya existe")
	ErrDuplicateBarcode    = errors.New("ya existe un producto con ese código de barras")
	ErrDuplicateAsset      = errors.New("el activo ya existe")
	ErrDuplicateDescriptor = errors.New("el descriptor ya existe")
	ErrNegativeStock       = errors.New("la cantidad no puede quedar negativa")
	ErrDescriptorInUse     = errors.New("el descriptor está en uso por productos")
)
