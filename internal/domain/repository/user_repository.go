package repository

import (
	"context"

	"github.com/tu-usuario/it-supplies-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// List devuelve todos los usuarios salvo el protegido, ordenados por username.
	List(ctx context.Context) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error
}
