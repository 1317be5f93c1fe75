package repository

import (
	"context"

	"github.com/tu-usuario/it-supplies-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Search aplica los filtros y devuelve ordenado por (brand, model) asc.
	Search(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	// AdjustQuantity aplica quantity += delta en una sola sentencia condicional
	// (compare-and-swap a nivel de storage): si el resultado quedara negativo
	// no escribe nada y devuelve domain.ErrNegativeStock. Retorna la cantidad
	// resultante.
	AdjustQuantity(ctx context.Context, id string, delta int) (int, error)
	// CountByType cuenta productos cuya categoría es type (guard de borrado de
	// descriptores; se consulta en vivo, nunca cacheado).
	CountByType(ctx context.Context, productType string) (int, error)
}
