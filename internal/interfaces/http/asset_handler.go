package http

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/it-supplies-api/internal/application/dto"
	"github.com/tu-usuario/it-supplies-api/internal/application/usecase"
)

var errCSVMissingName = errors.New("el CSV debe incluir la columna name")

// AssetHandler maneja las peticiones HTTP para Asset (protegido).
type AssetHandler struct {
	uc *usecase.AssetUseCase
}

// NewAssetHandler construye el handler.
func NewAssetHandler(uc *usecase.AssetUseCase) *AssetHandler {
	return &AssetHandler{uc: uc}
}

// List godoc
// @Summary      Listar activos con sus productos instalados
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AssetResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear activo manualmente
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssetRequest  true  "Nombre y tipo (vacío = computer)"
// @Success      201   {object}  dto.AssetResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in, requestMeta(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Remove godoc
// @Summary      Eliminar activo
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del activo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [delete]
func (h *AssetHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Context(), GetUserID(c), c.Params("id"), requestMeta(c)); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "activo eliminado"})
}

// Import godoc
// @Summary      Importación masiva de activos desde CSV
// @Description  Columnas: name (requerida), type (opcional, default computer).
//               Cada fila se clasifica en success, ignored o errors; el batch
//               nunca aborta por una fila mala.
// @Tags         assets
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo CSV"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/assets/import [post]
func (h *AssetHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo CSV no provisto"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer file.Close()

	rows, err := parseAssetCSV(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CSV", Message: err.Error()})
	}

	out, err := h.uc.BulkImport(c.Context(), GetUserID(c), rows, requestMeta(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Install godoc
// @Summary      Instalar un producto en un activo
// @Description  Decrementa la cantidad del producto y agrega el vínculo en una
//               sola transacción.
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del activo"
// @Param        body  body  dto.InstallProductRequest  true  "ID del producto"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/products [post]
func (h *AssetHandler) Install(c *fiber.Ctx) error {
	var in dto.InstallProductRequest
	if err := c.BodyParser(&in); err != nil || in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "product_id es requerido"})
	}
	if err := h.uc.InstallProduct(c.Context(), GetUserID(c), c.Params("id"), in.ProductID, requestMeta(c)); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto instalado"})
}

// parseAssetCSV materializa el archivo en filas para el use case. La primera
// línea es el header; se aceptan las columnas name y type en cualquier orden.
func parseAssetCSV(r io.Reader) ([]dto.ImportRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	nameIdx, typeIdx := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "name":
			nameIdx = i
		case "type":
			typeIdx = i
		}
	}
	if nameIdx < 0 {
		return nil, errCSVMissingName
	}

	var rows []dto.ImportRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := dto.ImportRow{}
		if nameIdx < len(record) {
			row.Name = strings.TrimSpace(record[nameIdx])
		}
		if typeIdx >= 0 && typeIdx < len(record) {
			row.Type = strings.TrimSpace(record[typeIdx])
		}
		rows = append(rows, row)
	}
	return rows, nil
}
