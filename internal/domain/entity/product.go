package entity

import "time"

// Product representa un lote de insumos de TI intercambiables (identificado
// por código de barras único). Quantity es un contador entero que nunca baja
// de cero; la validación ocurre en la escritura, no a posteriori.
type Product struct {
	ID          string
	Type        string // categoría, una de DefaultCategories
	Brand       string
	Model       string
	Description string
	Barcode     string // único
	Quantity    int
	CreatedBy   string // UserID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductFilter filtros de búsqueda: substring case-insensitive en
// brand/model/description/barcode, igualdad exacta en type.
type ProductFilter struct {
	Brand       string
	Type        string
	Model       string
	Description string
	Barcode     string
}
