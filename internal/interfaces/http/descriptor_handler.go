package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/it-supplies-api/internal/application/dto"
	"github.com/tu-usuario/it-supplies-api/internal/application/usecase"
)

// DescriptorHandler maneja las peticiones HTTP para los descriptores de tipo.
type DescriptorHandler struct {
	uc *usecase.DescriptorUseCase
}

// NewDescriptorHandler construye el handler.
func NewDescriptorHandler(uc *usecase.DescriptorUseCase) *DescriptorHandler {
	return &DescriptorHandler{uc: uc}
}

// List godoc
// @Summary      Listar descriptores de tipo
// @Tags         descriptors
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DescriptorResponse
// @Router       /api/descriptors [get]
func (h *DescriptorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear descriptor de tipo
// @Tags         descriptors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDescriptorRequest  true  "Nombre del descriptor"
// @Success      201   {object}  dto.DescriptorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/descriptors [post]
func (h *DescriptorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDescriptorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in, requestMeta(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar descriptor de tipo
// @Description  Falla con 409 si algún producto del inventario todavía usa el
//               tipo.
// @Tags         descriptors
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del descriptor"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/descriptors/{id} [delete]
func (h *DescriptorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id"), requestMeta(c)); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "descriptor eliminado"})
}
