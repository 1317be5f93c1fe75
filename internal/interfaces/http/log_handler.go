package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/it-supplies-api/internal/application/dto"
	"github.com/tu-usuario/it-supplies-api/internal/application/usecase"
)

// LogHandler expone la consulta del registro de auditoría (solo lectura).
type LogHandler struct {
	uc *usecase.LogUseCase
}

// NewLogHandler construye el handler.
func NewLogHandler(uc *usecase.LogUseCase) *LogHandler {
	return &LogHandler{uc: uc}
}

// Query godoc
// @Summary      Consultar el registro de auditoría
// @Description  Filtra por usuario, acción y rango de fechas (ambas requeridas
//               para aplicar el rango). Ordenado de más reciente a más antiguo.
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Param        userId     query  string  false  "ID del usuario actor"
// @Param        action     query  string  false  "Acción exacta"
// @Param        startDate  query  string  false  "RFC3339"
// @Param        endDate    query  string  false  "RFC3339"
// @Param        page       query  int     false  "Página (desde 1)"
// @Param        limit      query  int     false  "Tamaño de página (máx 200)"
// @Success      200  {object}  dto.LogPageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/logs [get]
func (h *LogHandler) Query(c *fiber.Ctx) error {
	var in dto.LogQueryRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.Query(c.Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
