package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/application/usecase"
	"github.com/jhoicas/Kardex-api/internal/domain"
)

// BatchHandler consultas de lotes (protegido). Los lotes se crean vía
// movimientos con lot_no, no por POST directo.
type BatchHandler struct {
	uc *usecase.BatchUseCase
}

// NewBatchHandler construye el handler.
func NewBatchHandler(uc *usecase.BatchUseCase) *BatchHandler {
	return &BatchHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener lote por ID
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [get]
func (h *BatchHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Listar lotes de un producto (primero los próximos a vencer)
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  true  "ID del producto"
// @Success      200  {array}   dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches [get]
func (h *BatchHandler) ListByProduct(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	out, err := h.uc.ListByProduct(productID)
	if err != nil {
		if errors.Is(err, domain.ErrDependency) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
