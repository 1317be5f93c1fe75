package dto

import "time"

// CreateProductRequest entrada para crear un producto (cantidad inicial 0).
type CreateProductRequest struct {
	Type        string `json:"type"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Description string `json:"description"`
	Barcode     string `json:"barcode"`
}

// SearchProductsRequest filtros de búsqueda (query params).
type SearchProductsRequest struct {
	Brand       string `query:"brand"`
	Type        string `query:"type"`
	Model       string `query:"model"`
	Description string `query:"description"`
	Barcode     string `query:"barcode"`
}

// AdjustQuantityRequest entrada para ajustar la cantidad de un producto.
// Context se persiste tal cual en el log de auditoría (orden de compra en
// entradas, activo destino en salidas, etc.); el core no lo interpreta.
type AdjustQuantityRequest struct {
	Delta   int            `json:"delta"`
	Context map[string]any `json:"context"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Description string    `json:"description"`
	Barcode     string    `json:"barcode"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
