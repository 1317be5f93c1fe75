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

// AssetUseCase activos físicos: alta manual, baja, importación masiva CSV e
// instalación de productos.
type AssetUseCase struct {
	repo     repository.AssetRepository
	txRunner TxRunner
	recorder audit.Sink
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(repo repository.AssetRepository, txRunner TxRunner, recorder audit.Sink) *AssetUseCase {
	return &AssetUseCase{repo: repo, txRunner: txRunner, recorder: recorder}
}

// List devuelve todos los activos ordenados por nombre, con sus productos instalados.
func (uc *AssetUseCase) List(ctx context.Context) ([]dto.AssetResponse, error) {
	assets, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, *toAssetResponse(a))
	}
	return out, nil
}

// Create crea un activo manualmente. Type vacío se interpreta como computer.
func (uc *AssetUseCase) Create(ctx context.Context, actorID string, in dto.CreateAssetRequest, meta audit.RequestMeta) (*dto.AssetResponse, error) {
	asset, err := uc.newAsset(in.Name, in.Type, actorID)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, asset); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, entity.ActionAssetCreated, &actorID, map[string]any{
		"asset_id": asset.ID,
		"name":     asset.Name,
	}, meta)
	return toAssetResponse(asset), nil
}

// Remove elimina un activo por ID.
func (uc *AssetUseCase) Remove(ctx context.Context, actorID, id string, meta audit.RequestMeta) error {
	asset, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.recorder.Record(ctx, entity.ActionAssetDeleted, &actorID, map[string]any{
		"asset_id": id,
		"name":     asset.Name,
	}, meta)
	return nil
}

// BulkImport procesa las filas en orden y clasifica cada una en exactamente un
// resultado: success, ignored (nombre ya existente) o errored. Un error de una
// fila nunca aborta el batch ni revierte los éxitos anteriores; si el mismo
// nombre nuevo aparece dos veces, gana la primera aparición. Cada creación
// exitosa emite una entrada ASSET_CREATED marcada como importación.
func (uc *AssetUseCase) BulkImport(ctx context.Context, actorID string, rows []dto.ImportRow, meta audit.RequestMeta) (*dto.ImportResult, error) {
	result := &dto.ImportResult{
		Success: []string{},
		Ignored: []dto.IgnoredRow{},
		Errors:  []dto.ErroredRow{},
	}

	for _, row := range rows {
		// El duplicado se resuelve antes de validar: una fila cuyo nombre ya
		// existe se ignora aunque el resto de la fila sea inválido.
		if row.Name != "" {
			existing, err := uc.repo.GetByName(ctx, row.Name)
			if err != nil {
				result.Errors = append(result.Errors, dto.ErroredRow{Name: row.Name, Error: err.Error()})
				continue
			}
			if existing != nil {
				result.Ignored = append(result.Ignored, dto.IgnoredRow{Name: row.Name, Reason: "duplicate"})
				continue
			}
		}

		asset, err := uc.newAsset(row.Name, row.Type, actorID)
		if err != nil {
			result.Errors = append(result.Errors, dto.ErroredRow{Name: row.Name, Error: err.Error()})
			continue
		}

		if err := uc.repo.Create(ctx, asset); err != nil {
			// Carrera entre el chequeo y el insert: el constraint manda.
			if err == domain.ErrDuplicateAsset {
				result.Ignored = append(result.Ignored, dto.IgnoredRow{Name: row.Name, Reason: "duplicate"})
			} else {
				result.Errors = append(result.Errors, dto.ErroredRow{Name: row.Name, Error: err.Error()})
			}
			continue
		}

		uc.recorder.Record(ctx, entity.ActionAssetCreated, &actorID, map[string]any{
			"asset_id": asset.ID,
			"name":     asset.Name,
			"method":   "csv_import",
		}, meta)
		result.Success = append(result.Success, asset.Name)
	}

	return result, nil
}

// InstallProduct registra la instalación física de un producto en un activo:
// decrementa la cantidad del producto y agrega el vínculo en una sola
// transacción, y emite una única entrada PRODUCT_INSTALLED.
func (uc *AssetUseCase) InstallProduct(ctx context.Context, actorID, assetID, productID string, meta audit.RequestMeta) error {
	asset, err := uc.repo.GetByID(ctx, assetID)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.ErrNotFound
	}

	err = uc.txRunner.Run(ctx, func(assetRepo repository.AssetRepository, productRepo repository.ProductRepository) error {
		if _, err := productRepo.AdjustQuantity(ctx, productID, -1); err != nil {
			return err
		}
		return assetRepo.AddProduct(ctx, assetID, productID)
	})
	if err != nil {
		return err
	}

	uc.recorder.Record(ctx, entity.ActionProductInstalled, &actorID, map[string]any{
		"asset_id":   assetID,
		"asset_name": asset.Name,
		"product_id": productID,
	}, meta)
	return nil
}

// newAsset valida nombre y tipo y arma la entidad. Tipo vacío = computer.
func (uc *AssetUseCase) newAsset(name, assetType, actorID string) (*entity.Asset, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if assetType == "" {
		assetType = entity.AssetTypeComputer
	}
	if !entity.IsValidAssetType(assetType) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	return &entity.Asset{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      assetType,
		Status:    entity.AssetStatusActive,
		CreatedBy: actorID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func toAssetResponse(a *entity.Asset) *dto.AssetResponse {
	if a == nil {
		return nil
	}
	products := make([]dto.AssetProductResponse, 0, len(a.Products))
	for _, p := range a.Products {
		products = append(products, dto.AssetProductResponse{ProductID: p.ProductID, InstalledAt: p.InstalledAt})
	}
	return &dto.AssetResponse{
		ID:        a.ID,
		Name:      a.Name,
		Type:      a.Type,
		Status:    a.Status,
		Products:  products,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
