package dto

import "time"

// CreateAssetRequest entrada para crear un activo. Type vacío = computer.
type CreateAssetRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ImportRow una fila del CSV de importación masiva.
type ImportRow struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ImportResult clasificación de tres vías del import: cada fila cae en
// exactamente una lista y el batch nunca aborta.
type ImportResult struct {
	Success []string        `json:"success"`
	Ignored []IgnoredRow    `json:"ignored"`
	Errors  []ErroredRow    `json:"errors"`
}

// IgnoredRow fila ignorada (duplicado) con su motivo.
type IgnoredRow struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ErroredRow fila con error de creación o validación.
type ErroredRow struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// InstallProductRequest entrada para instalar un producto en un activo.
type InstallProductRequest struct {
	ProductID string `json:"product_id"`
}

// AssetProductResponse vínculo de instalación en la respuesta.
type AssetProductResponse struct {
	ProductID   string    `json:"product_id"`
	InstalledAt time.Time `json:"installed_at"`
}

// AssetResponse salida de un activo.
type AssetResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Type      string                 `json:"type"`
	Status    string                 `json:"status"`
	Products  []AssetProductResponse `json:"products"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
