package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/it-supplies-api/internal/application/dto"
	"github.com/tu-usuario/it-supplies-api/internal/domain"
	"github.com/tu-usuario/it-supplies-api/internal/domain/entity"
	"github.com/tu-usuario/it-supplies-api/internal/domain/repository"
)

const (
	defaultLogPageSize = 50
	maxLogPageSize     = 200
)

// LogUseCase consulta paginada del historial de auditoría (el único contrato
// de lectura del componente; no existe escritura fuera del Recorder).
type LogUseCase struct {
	repo repository.LogRepository
}

// NewLogUseCase construye el caso de uso.
func NewLogUseCase(repo repository.LogRepository) *LogUseCase {
	return &LogUseCase{repo: repo}
}

// Query devuelve una página de entradas ordenadas por timestamp descendente.
// Una página fuera de rango devuelve lista vacía con total y páginas correctos.
// start_date y end_date se aplican solo si vienen ambos (RFC 3339).
func (uc *LogUseCase) Query(ctx context.Context, in dto.LogQueryRequest) (*dto.LogPageResponse, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultLogPageSize
	}
	if limit > maxLogPageSize {
		limit = maxLogPageSize
	}

	filter := entity.LogFilter{
		UserID: in.UserID,
		Action: in.Action,
	}
	if in.StartDate != "" && in.EndDate != "" {
		start, err := time.Parse(time.RFC3339, in.StartDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		end, err := time.Parse(time.RFC3339, in.EndDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.StartDate = &start
		filter.EndDate = &end
	}

	offset := (page - 1) * limit
	entries, total, err := uc.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	logs := make([]dto.LogEntryResponse, 0, len(entries))
	for _, e := range entries {
		logs = append(logs, dto.LogEntryResponse{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			Action:    e.Action,
			UserID:    e.UserID,
			Username:  e.Username,
			Details:   e.Details,
			IPAddress: e.IPAddress,
			UserAgent: e.UserAgent,
		})
	}

	return &dto.LogPageResponse{
		Logs:        logs,
		Total:       total,
		Pages:       (total + limit - 1) / limit,
		CurrentPage: page,
	}, nil
}
