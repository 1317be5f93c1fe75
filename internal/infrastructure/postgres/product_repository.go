package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/it-supplies-api/internal/domain"
	"github.com/tu-usuario/it-supplies-api/internal/domain/entity"
	"github.com/tu-usuario/it-supplies-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, type, brand, model, description, barcode, quantity, created_by, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo con su cantidad inicial.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, type, brand, model, description, barcode, quantity, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Type, product.Brand, product.Model, product.Description,
		product.Barcode, product.Quantity, product.CreatedBy, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateBarcode
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil sin error si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Type, &p.Brand, &p.Model, &p.Description,
		&p.Barcode, &p.Quantity, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Search aplica filtros ILIKE (substring, case-insensitive) sobre brand, model,
// description y barcode, igualdad exacta sobre type. Orden (brand, model) asc.
func (r *ProductRepo) Search(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	var conditions []string
	var args []any

	like := func(column, value string) {
		args = append(args, "%"+value+"%")
		conditions = append(conditions, column+" ILIKE $"+strconv.Itoa(len(args)))
	}
	if filter.Brand != "" {
		like("brand", filter.Brand)
	}
	if filter.Model != "" {
		like("model", filter.Model)
	}
	if filter.Description != "" {
		like("description", filter.Description)
	}
	if filter.Barcode != "" {
		like("barcode", filter.Barcode)
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, "type = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY brand ASC, model ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Type, &p.Brand, &p.Model, &p.Description,
			&p.Barcode, &p.Quantity, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// AdjustQuantity aplica el delta en una sola sentencia condicional: el chequeo
// de no-negatividad y la escritura son atómicos frente a ajustes concurrentes
// sobre el mismo producto. Si la condición no pasa, la fila queda intacta y se
// devuelve ErrNegativeStock; si el producto no existe, ErrNotFound.
func (r *ProductRepo) AdjustQuantity(ctx context.Context, id string, delta int) (int, error) {
	query := `
		UPDATE products
		SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING quantity`
	var newQuantity int
	err := r.q.QueryRow(ctx, query, id, delta).Scan(&newQuantity)
	if err == nil {
		return newQuantity, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("adjust quantity: %w", err)
	}

	// La condición no matcheó: distinguir producto inexistente de stock insuficiente.
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if existing == nil {
		return 0, domain.ErrNotFound
	}
	return 0, domain.ErrNegativeStock
}

// CountByType cuenta productos con la categoría dada (guard de borrado de descriptores).
func (r *ProductRepo) CountByType(ctx context.Context, productType string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM products WHERE type = $1`, productType).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by type: %w", err)
	}
	return count, nil
}
