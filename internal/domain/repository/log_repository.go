package repository

import (
	"context"

	"github.com/tu-usuario/it-supplies-api/internal/domain/entity"
)

// LogRepository define el puerto del historial de auditoría. La inmutabilidad
// es estructural: el puerto no expone update ni delete, y el storage rechaza
// esas operaciones por trigger si algo las intenta por otra vía.
type LogRepository interface {
	// Create es la única escritura: inserta una entrada nueva, nunca modifica.
	Create(ctx context.Context, entry *entity.LogEntry) error
	// List devuelve una página (orden timestamp desc) y el total que matchea el filtro.
	List(ctx context.Context, filter entity.LogFilter, limit, offset int) ([]*entity.LogEntry, int, error)
}
