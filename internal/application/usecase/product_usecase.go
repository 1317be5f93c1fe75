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

// ProductUseCase inventario de insumos: alta, búsqueda y el ajuste guardado de
// cantidad. La cantidad nunca queda negativa; el chequeo y la escritura son
// atómicos a nivel de storage.
type ProductUseCase struct {
	repo     repository.ProductRepository
	recorder audit.Sink
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, recorder audit.Sink) *ProductUseCase {
	return &ProductUseCase{repo: repo, recorder: recorder}
}

// Create crea un producto con cantidad inicial 0. La categoría debe pertenecer
// al conjunto cerrado; el código de barras debe ser único.
func (uc *ProductUseCase) Create(ctx context.Context, actorID string, in dto.CreateProductRequest, meta audit.RequestMeta) (*dto.ProductResponse, error) {
	if in.Brand == "" || in.Model == "" || in.Description == "" || in.Barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidCategory(in.Type) {
		return nil, domain.ErrInvalidCategory
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Type:        in.Type,
		Brand:       in.Brand,
		Model:       in.Model,
		Description: in.Description,
		Barcode:     in.Barcode,
		Quantity:    0,
		CreatedBy:   actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, entity.ActionProductCreated, &actorID, map[string]any{
		"product_id": product.ID,
		"brand":      product.Brand,
		"model":      product.Model,
	}, meta)
	return toProductResponse(product), nil
}

// Search busca productos con los filtros dados; sin filtros devuelve todo el
// catálogo ordenado por (brand, model).
func (uc *ProductUseCase) Search(ctx context.Context, in dto.SearchProductsRequest) ([]dto.ProductResponse, error) {
	products, err := uc.repo.Search(ctx, entity.ProductFilter{
		Brand:       in.Brand,
		Type:        in.Type,
		Model:       in.Model,
		Description: in.Description,
		Barcode:     in.Barcode,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// AdjustQuantity aplica quantity += delta de forma atómica. Si el resultado
// quedara negativo no se escribe nada y retorna ErrNegativeStock. El contexto
// del llamador se persiste tal cual en la entrada de auditoría.
func (uc *ProductUseCase) AdjustQuantity(ctx context.Context, actorID, id string, in dto.AdjustQuantityRequest, meta audit.RequestMeta) (*dto.ProductResponse, error) {
	if in.Delta == 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	newQuantity, err := uc.repo.AdjustQuantity(ctx, id, in.Delta)
	if err != nil {
		return nil, err
	}

	action := entity.ActionQuantityRemoved
	if in.Delta > 0 {
		action = entity.ActionQuantityAdded
	}
	uc.recorder.Record(ctx, action, &actorID, map[string]any{
		"product_id":      id,
		"quantity_change": in.Delta,
		"new_quantity":    newQuantity,
		"request_info":    in.Context,
	}, meta)

	// La mutación ya está confirmada: la respuesta sale de la cantidad que
	// devolvió el UPDATE, sin relectura que pueda fallar después del commit.
	product.Quantity = newQuantity
	product.UpdatedAt = time.Now()
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Type:        p.Type,
		Brand:       p.Brand,
		Model:       p.Model,
		Description: p.Description,
		Barcode:     p.Barcode,
		Quantity:    p.Quantity,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
