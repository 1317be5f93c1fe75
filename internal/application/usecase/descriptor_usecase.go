package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/it-supplies-api/internal/application/audit"
	"github.com/tu-usuario/it-supplies-api/internal/application/dto"
	"github.com/tu-usuario/it-supplies-api/internal/domain"
	"github.com/tu-usuario/it-supplies-api/internal/domain/entity"
	"github.com/tu-usuario/it-supplies-api/internal/domain/repository"
)

// DescriptorUseCase catálogo de categorías. Un descriptor referenciado por
// algún producto no puede eliminarse; el conteo se consulta en vivo contra el
// inventario en el momento del borrado.
type DescriptorUseCase struct {
	repo        repository.DescriptorRepository
	productRepo repository.ProductRepository
	recorder    audit.Sink
}

// NewDescriptorUseCase construye el caso de uso.
func NewDescriptorUseCase(repo repository.DescriptorRepository, productRepo repository.ProductRepository, recorder audit.Sink) *DescriptorUseCase {
	return &DescriptorUseCase{repo: repo, productRepo: productRepo, recorder: recorder}
}

// List devuelve todos los descriptores ordenados por nombre.
func (uc *DescriptorUseCase) List(ctx context.Context) ([]dto.DescriptorResponse, error) {
	descriptors, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DescriptorResponse, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, dto.DescriptorResponse{ID: d.ID, Name: d.Name, CreatedAt: d.CreatedAt})
	}
	return out, nil
}

// Create crea un descriptor con nombre único.
func (uc *DescriptorUseCase) Create(ctx context.Context, actorID string, in dto.CreateDescriptorRequest, meta audit.RequestMeta) (*dto.DescriptorResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	descriptor := &entity.Descriptor{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedBy: actorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, descriptor); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, entity.ActionDescriptorCreated, &actorID, map[string]any{
		"descriptor_id": descriptor.ID,
		"name":          descriptor.Name,
	}, meta)
	return &dto.DescriptorResponse{ID: descriptor.ID, Name: descriptor.Name, CreatedAt: descriptor.CreatedAt}, nil
}

// Delete elimina un descriptor si ningún producto lo usa como categoría.
func (uc *DescriptorUseCase) Delete(ctx context.Context, actorID, id string, meta audit.RequestMeta) error {
	descriptor, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if descriptor == nil {
		return domain.ErrNotFound
	}
	count, err := uc.productRepo.CountByType(ctx, descriptor.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrDescriptorInUse
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.recorder.Record(ctx, entity.ActionDescriptorDeleted, &actorID, map[string]any{
		"descriptor_id": id,
		"name":          descriptor.Name,
	}, meta)
	return nil
}

// EnsureDefaults crea los descriptores del conjunto cerrado de categorías si
// no existen (idempotente, se ejecuta al arrancar).
func (uc *DescriptorUseCase) EnsureDefaults(ctx context.Context, adminID string) error {
	for _, name := range entity.DefaultCategories {
		existing, err := uc.repo.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		now := time.Now()
		descriptor := &entity.Descriptor{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedBy: adminID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.repo.Create(ctx, descriptor); err != nil && err != domain.ErrDuplicateDescriptor {
			return err
		}
	}
	return nil
}
