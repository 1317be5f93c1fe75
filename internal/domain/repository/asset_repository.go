package repository

import (
	"context"

	"github.com/tu-usuario/it-supplies-api/internal/domain/entity"
)

// AssetRepository define el puerto de persistencia para Asset (DIP).
type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	GetByID(ctx context.Context, id string) (*entity.Asset, error)
	GetByName(ctx context.Context, name string) (*entity.Asset, error)
	// List devuelve todos los activos con sus productos instalados, ordenados por nombre.
	List(ctx context.Context) ([]*entity.Asset, error)
	Delete(ctx context.Context, id string) error
	// AddProduct agrega el vínculo de instalación al activo.
	AddProduct(ctx context.Context, assetID, productID string) error
}
