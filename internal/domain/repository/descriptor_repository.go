package repository

import (
	"context"

	"github.com/tu-usuario/it-supplies-api/internal/domain/entity"
)

// DescriptorRepository define el puerto de persistencia para Descriptor (DIP).
type DescriptorRepository interface {
	Create(ctx context.Context, descriptor *entity.Descriptor) error
	GetByID(ctx context.Context, id string) (*entity.Descriptor, error)
	GetByName(ctx context.Context, name string) (*entity.Descriptor, error)
	// List devuelve todos los descriptores ordenados por nombre asc.
	List(ctx context.Context) ([]*entity.Descriptor, error)
	Delete(ctx context.Context, id string) error
}
