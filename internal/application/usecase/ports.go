package usecase

import (
	"context"

	"github.com/tu-usuario/it-supplies-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// Commit si fn devuelve nil, Rollback en caso contrario. Lo implementa
// postgres.TxRunner; se usa en el flujo de instalación, donde el decremento de
// cantidad y el vínculo al activo deben confirmar juntos o no confirmar.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		assetRepo repository.AssetRepository,
		productRepo repository.ProductRepository,
	) error) error
}
