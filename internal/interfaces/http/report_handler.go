package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/application/report"
	"github.com/jhoicas/Kardex-api/internal/domain"
)

// ReportHandler reportes de solo lectura y exportación del ledger (protegido).
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// CurrentStock godoc
// @Summary      Stock actual desde la vista inventory_current
// @Description  Si la vista aún no existe en la base, devuelve lista vacía.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CurrentStockItem
// @Router       /api/reports/current-stock [get]
func (h *ReportHandler) CurrentStock(c *fiber.Ctx) error {
	out, err := h.uc.CurrentStock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Historial de movimientos con referencias resueltas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from      query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to        query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Param        txn_type  query  string  false  "IN | OUT | ADJUST"
// @Param        limit     query  int     false  "Máximo de filas"  default(500)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	var q dto.MovementsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	if err := validateStruct(q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Movements(q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar el ledger como archivo PDF o XML
// @Description  Genera el documento completo en memoria y lo sirve como
//
//	descarga (transactions_YYYY-MM-DD.pdf|xml). Un ledger vacío exporta igual.
//
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        format    query  string  false  "pdf | xml"  default(pdf)
// @Param        from      query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to        query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Param        txn_type  query  string  false  "IN | OUT | ADJUST"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	format := c.Query("format", report.FormatPDF)
	var q dto.MovementsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	if err := validateStruct(q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	res, err := h.uc.ExportLedger(format, q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrExport) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: "no se pudo generar el archivo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, res.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return c.Send(res.Data)
}
