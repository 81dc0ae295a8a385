package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/application/inventory"
	"github.com/jhoicas/Kardex-api/internal/domain"
)

// InventoryHandler maneja el registro de transacciones y la consulta de
// saldos (protegido).
type InventoryHandler struct {
	recorder *inventory.RecordMovementUseCase
	balances *inventory.BalanceUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(recorder *inventory.RecordMovementUseCase, balances *inventory.BalanceUseCase) *InventoryHandler {
	return &InventoryHandler{recorder: recorder, balances: balances}
}

// RecordTransaction godoc
// @Summary      Registrar transacción de inventario (IN, OUT, ADJUST)
// @Description  Agrega una fila al ledger. ADJUST exige direction (add|shrink).
//
//	Lote: batch_id directo, o lot_no para crear uno nuevo; ambos opcionales.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordTransactionRequest  true  "Datos de la transacción"
// @Success      201   {object}  dto.RecordTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/transactions [post]
func (h *InventoryHandler) RecordTransaction(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	input := inventory.RecordMovementInput{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		BatchID:     in.BatchID,
		LotNo:       in.LotNo,
		TxnType:     in.TxnType,
		Qty:         in.Qty,
		UnitCost:    in.UnitCost,
		Direction:   in.Direction,
		Reason:      in.Reason,
		RefNo:       in.RefNo,
	}
	if in.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", in.ExpiryDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "expiry_date debe ser YYYY-MM-DD"})
		}
		input.ExpiryDate = &expiry
	}

	id, err := h.recorder.Record(c.Context(), userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos: revisar txn_type, qty > 0 y direction en ADJUST"})
		}
		if errors.Is(err, domain.ErrDependency) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "DEPENDENCY", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecordTransactionResponse{ID: id})
}

// Balances godoc
// @Summary      Saldos actuales calculados desde el ledger
// @Description  Reduce el ledger con la regla de signo (IN suma, OUT resta,
//
//	ADJUST según direction). by_warehouse y by_batch refinan la agrupación;
//	sin ellos el saldo es total por producto e incluye el flag low_stock.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  false  "Filtrar por producto"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        batch_id      query  string  false  "Filtrar por lote"
// @Param        by_warehouse  query  bool    false  "Agrupar por bodega"
// @Param        by_batch      query  bool    false  "Agrupar por lote"
// @Success      200  {object}  dto.BalanceListResponse
// @Router       /api/inventory/balances [get]
func (h *InventoryHandler) Balances(c *fiber.Ctx) error {
	var q dto.BalanceQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	out, err := h.balances.CurrentBalances(c.Context(), q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
