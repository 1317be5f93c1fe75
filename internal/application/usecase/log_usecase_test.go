package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/it-supplies-api/internal/application/dto"
	"github.com/tu-usuario/it-supplies-api/internal/application/usecase"
	"github.com/tu-usuario/it-supplies-api/internal/domain"
	"github.com/tu-usuario/it-supplies-api/internal/domain/entity"
)

func makeEntries(n int) []*entity.LogEntry {
	out := make([]*entity.LogEntry, 0, n)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		out = append(out, &entity.LogEntry{
			ID:        fmt.Sprintf("log-%02d", i),
			Timestamp: base.Add(-time.Duration(i) * time.Minute),
			Action:    entity.ActionProductCreated,
		})
	}
	return out
}

// 25 entradas con limit 20: la página 1 trae 20, la página 2 trae 5 y ambas
// reportan total 25 y pages 2.
func TestLogQuery_Paginacion(t *testing.T) {
	repo := new(LogRepoMock)
	uc := usecase.NewLogUseCase(repo)

	repo.On("List", mock.Anything, entity.LogFilter{}, 20, 0).
		Return(makeEntries(20), 25, nil).Once()
	repo.On("List", mock.Anything, entity.LogFilter{}, 20, 20).
		Return(makeEntries(5), 25, nil).Once()

	page1, err := uc.Query(context.Background(), dto.LogQueryRequest{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, page1.Logs, 20)
	assert.Equal(t, 25, page1.Total)
	assert.Equal(t, 2, page1.Pages)
	assert.Equal(t, 1, page1.CurrentPage)

	page2, err := uc.Query(context.Background(), dto.LogQueryRequest{Page: 2, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, page2.Logs, 5)
	assert.Equal(t, 25, page2.Total)
	assert.Equal(t, 2, page2.Pages)
	assert.Equal(t, 2, page2.CurrentPage)
	repo.AssertExpectations(t)
}

func TestLogQuery_DefaultsYTope(t *testing.T) {
	repo := new(LogRepoMock)
	uc := usecase.NewLogUseCase(repo)

	// Sin page ni limit: página 1, límite 50.
	repo.On("List", mock.Anything, entity.LogFilter{}, 50, 0).
		Return([]*entity.LogEntry{}, 0, nil).Once()
	out, err := uc.Query(context.Background(), dto.LogQueryRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.CurrentPage)

	// Límite por encima del máximo se recorta a 200.
	repo.On("List", mock.Anything, entity.LogFilter{}, 200, 0).
		Return([]*entity.LogEntry{}, 0, nil).Once()
	_, err = uc.Query(context.Background(), dto.LogQueryRequest{Limit: 10000})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

// Página fuera de rango: lista vacía pero total y pages siguen correctos.
func TestLogQuery_PaginaFueraDeRango(t *testing.T) {
	repo := new(LogRepoMock)
	uc := usecase.NewLogUseCase(repo)

	repo.On("List", mock.Anything, entity.LogFilter{}, 20, 80).
		Return([]*entity.LogEntry{}, 25, nil).Once()

	out, err := uc.Query(context.Background(), dto.LogQueryRequest{Page: 5, Limit: 20})

	require.NoError(t, err)
	assert.Empty(t, out.Logs)
	assert.Equal(t, 25, out.Total)
	assert.Equal(t, 2, out.Pages)
	assert.Equal(t, 5, out.CurrentPage)
}

// El rango de fechas solo se aplica si vienen ambos extremos.
func TestLogQuery_RangoDeFechas(t *testing.T) {
	repo := new(LogRepoMock)
	uc := usecase.NewLogUseCase(repo)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)

	repo.On("List", mock.Anything, mock.MatchedBy(func(f entity.LogFilter) bool {
		return f.StartDate != nil && f.StartDate.Equal(start) &&
			f.EndDate != nil && f.EndDate.Equal(end)
	}), 50, 0).Return([]*entity.LogEntry{}, 0, nil).Once()

	_, err := uc.Query(context.Background(), dto.LogQueryRequest{
		StartDate: "2025-03-01T00:00:00Z",
		EndDate:   "2025-03-31T23:59:59Z",
	})
	require.NoError(t, err)

	// Solo un extremo: el filtro de fechas se omite.
	repo.On("List", mock.Anything, entity.LogFilter{}, 50, 0).
		Return([]*entity.LogEntry{}, 0, nil).Once()
	_, err = uc.Query(context.Background(), dto.LogQueryRequest{StartDate: "2025-03-01T00:00:00Z"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestLogQuery_FechaInvalida(t *testing.T) {
	uc := usecase.NewLogUseCase(new(LogRepoMock))

	_, err := uc.Query(context.Background(), dto.LogQueryRequest{
		StartDate: "01/03/2025",
		EndDate:   "2025-03-31T23:59:59Z",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogQuery_FiltrosDeActorYAccion(t *testing.T) {
	repo := new(LogRepoMock)
	uc := usecase.NewLogUseCase(repo)

	repo.On("List", mock.Anything, entity.LogFilter{UserID: "u1", Action: entity.ActionUserLogin}, 50, 0).
		Return([]*entity.LogEntry{{ID: "log-1", Action: entity.ActionUserLogin}}, 1, nil).Once()

	out, err := uc.Query(context.Background(), dto.LogQueryRequest{UserID: "u1", Action: entity.ActionUserLogin})

	require.NoError(t, err)
	require.Len(t, out.Logs, 1)
	assert.Equal(t, entity.ActionUserLogin, out.Logs[0].Action)
	repo.AssertExpectations(t)
}
