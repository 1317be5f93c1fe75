package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/it-supplies-api/internal/domain/entity"
	"github.com/tu-usuario/it-supplies-api/internal/domain/repository"
	"github.com/tu-usuario/it-supplies-api/pkg/logger"
)

// RequestMeta origen de la petición que disparó la mutación. El core solo lo
// persiste en la entrada de auditoría, no lo interpreta.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// Sink es el contrato que consumen los use cases para emitir auditoría.
// Lo implementa *Recorder; los tests sustituyen un doble que captura las llamadas.
type Sink interface {
	Record(ctx context.Context, action string, userID *string, details map[string]any, meta RequestMeta)
}

// Recorder agrega entradas al historial de auditoría. Cada mutación de dominio
// exitosa produce exactamente una entrada.
type Recorder struct {
	logs repository.LogRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder con el puerto del historial y el logger operativo.
func NewRecorder(logs repository.LogRepository, log *logger.Logger) *Recorder {
	return &Recorder{logs: logs, log: log}
}

// Record inserta una entrada de auditoría. Un fallo de inserción no revierte
// la mutación de dominio ya confirmada: se reporta por el logger operativo y
// la operación sigue siendo exitosa para el llamador.
func (r *Recorder) Record(ctx context.Context, action string, userID *string, details map[string]any, meta RequestMeta) {
	entry := &entity.LogEntry{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Action:    action,
		UserID:    userID,
		Details:   details,
		IPAddress: meta.IP,
		UserAgent: meta.UserAgent,
	}
	if err := r.logs.Create(ctx, entry); err != nil {
		r.log.Error().Err(err).
			Str("action", action).
			Msg("no se pudo registrar la entrada de auditoría")
	}
}
