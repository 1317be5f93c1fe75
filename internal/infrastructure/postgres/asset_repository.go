package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/it-supplies-api/internal/domain"
	"github.com/tu-usuario/it-supplies-api/internal/domain/entity"
	"github.com/tu-usuario/it-supplies-api/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

const assetColumns = `id, name, type, status, created_by, created_at, updated_at`

// AssetRepo implementación del puerto AssetRepository sobre PostgreSQL (usable con pool o tx).
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador de persistencia para activos. Pasar pool o tx (Querier).
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

// Create persiste un activo nuevo. Nombre duplicado se mapea a ErrDuplicateAsset.
func (r *AssetRepo) Create(ctx context.Context, asset *entity.Asset) error {
	query := `
		INSERT INTO assets (id, name, type, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		asset.ID, asset.Name, asset.Type, asset.Status, asset.CreatedBy, asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateAsset
		}
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// GetByID obtiene un activo con sus productos instalados. nil sin error si no existe.
func (r *AssetRepo) GetByID(ctx context.Context, id string) (*entity.Asset, error) {
	return r.getOne(ctx, `SELECT `+assetColumns+` FROM assets WHERE id = $1`, id)
}

// GetByName obtiene un activo por nombre exacto. nil sin error si no existe.
func (r *AssetRepo) GetByName(ctx context.Context, name string) (*entity.Asset, error) {
	return r.getOne(ctx, `SELECT `+assetColumns+` FROM assets WHERE name = $1`, name)
}

func (r *AssetRepo) getOne(ctx context.Context, query string, arg any) (*entity.Asset, error) {
	var a entity.Asset
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.Name, &a.Type, &a.Status, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	if err := r.loadProducts(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssetRepo) loadProducts(ctx context.Context, a *entity.Asset) error {
	rows, err := r.q.Query(ctx,
		`SELECT product_id, installed_at FROM asset_products WHERE asset_id = $1 ORDER BY installed_at ASC`, a.ID)
	if err != nil {
		return fmt.Errorf("load asset products: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.AssetProduct
		if err := rows.Scan(&p.ProductID, &p.InstalledAt); err != nil {
			return fmt.Errorf("scan asset product: %w", err)
		}
		a.Products = append(a.Products, p)
	}
	return rows.Err()
}

// List devuelve todos los activos ordenados por nombre, con sus vínculos de instalación.
func (r *AssetRepo) List(ctx context.Context) ([]*entity.Asset, error) {
	rows, err := r.q.Query(ctx, `SELECT `+assetColumns+` FROM assets ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Asset
	for rows.Next() {
		var a entity.Asset
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.Status, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		list = append(list, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, a := range list {
		if err := r.loadProducts(ctx, a); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Delete elimina un activo y sus vínculos (cascade del FK).
func (r *AssetRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	return nil
}

// AddProduct agrega el vínculo de instalación con timestamp actual.
func (r *AssetRepo) AddProduct(ctx context.Context, assetID, productID string) error {
	query := `INSERT INTO asset_products (asset_id, product_id, installed_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(ctx, query, assetID, productID, time.Now())
	if err != nil {
		return fmt.Errorf("add asset product: %w", err)
	}
	return nil
}
