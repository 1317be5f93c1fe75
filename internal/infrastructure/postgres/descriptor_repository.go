package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/it-supplies-api/internal/domain"
	"github.com/tu-usuario/it-supplies-api/internal/domain/entity"
	"github.com/tu-usuario/it-supplies-api/internal/domain/repository"
)

var _ repository.DescriptorRepository = (*DescriptorRepo)(nil)

const descriptorColumns = `id, name, created_by, created_at, updated_at`

// DescriptorRepo implementación del puerto DescriptorRepository sobre PostgreSQL.
type DescriptorRepo struct {
	q Querier
}

// NewDescriptorRepository construye el adaptador de persistencia para descriptores.
func NewDescriptorRepository(q Querier) *DescriptorRepo {
	return &DescriptorRepo{q: q}
}

// Create persiste un descriptor nuevo. Nombre duplicado se mapea a ErrDuplicateDescriptor.
func (r *DescriptorRepo) Create(ctx context.Context, descriptor *entity.Descriptor) error {
	query := `
		INSERT INTO descriptors (id, name, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		descriptor.ID, descriptor.Name, descriptor.CreatedBy, descriptor.CreatedAt, descriptor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateDescriptor
		}
		return fmt.Errorf("insert descriptor: %w", err)
	}
	return nil
}

// GetByID obtiene un descriptor por ID. nil sin error si no existe.
func (r *DescriptorRepo) GetByID(ctx context.Context, id string) (*entity.Descriptor, error) {
	return r.getOne(ctx, `SELECT `+descriptorColumns+` FROM descriptors WHERE id = $1`, id)
}

// GetByName obtiene un descriptor por nombre exacto. nil sin error si no existe.
func (r *DescriptorRepo) GetByName(ctx context.Context, name string) (*entity.Descriptor, error) {
	return r.getOne(ctx, `SELECT `+descriptorColumns+` FROM descriptors WHERE name = $1`, name)
}

func (r *DescriptorRepo) getOne(ctx context.Context, query string, arg any) (*entity.Descriptor, error) {
	var d entity.Descriptor
	err := r.q.QueryRow(ctx, query, arg).Scan(&d.ID, &d.Name, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get descriptor: %w", err)
	}
	return &d, nil
}

// List devuelve todos los descriptores ordenados por nombre asc.
func (r *DescriptorRepo) List(ctx context.Context) ([]*entity.Descriptor, error) {
	rows, err := r.q.Query(ctx, `SELECT `+descriptorColumns+` FROM descriptors ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list descriptors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Descriptor
	for rows.Next() {
		var d entity.Descriptor
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan descriptor: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina un descriptor por ID.
func (r *DescriptorRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM descriptors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete descriptor: %w", err)
	}
	return nil
}
