package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// Límite por defecto del reporte de movimientos y de la exportación,
// heredado de la pantalla de historial.
const defaultMovementLimit = 500

// Formato admitido por ExportLedger.
const (
	FormatPDF = "pdf"
	FormatXML = "xml"
)

// ReportUseCase reportes de solo lectura: stock actual, historial de
// movimientos y exportación del ledger (PDF/XML).
type ReportUseCase struct {
	txnRepo  repository.TransactionRepository
	viewRepo repository.BalanceViewRepository
	pdfGen   LedgerPDFGenerator
	xmlExp   LedgerXMLExporter
	clock    func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	txnRepo repository.TransactionRepository,
	viewRepo repository.BalanceViewRepository,
	pdfGen LedgerPDFGenerator,
	xmlExp LedgerXMLExporter,
) *ReportUseCase {
	return &ReportUseCase{
		txnRepo:  txnRepo,
		viewRepo: viewRepo,
		pdfGen:   pdfGen,
		xmlExp:   xmlExp,
		clock:    time.Now,
	}
}

// CurrentStock lista la vista inventory_current fila por fila. Si la vista no
// existe todavía (42P01), devuelve lista vacía en lugar de error.
func (uc *ReportUseCase) CurrentStock() ([]dto.CurrentStockItem, error) {
	rows, err := uc.viewRepo.List()
	if err != nil {
		if errors.Is(err, domain.ErrViewMissing) {
			return []dto.CurrentStockItem{}, nil
		}
		return nil, err
	}
	items := make([]dto.CurrentStockItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.CurrentStockItem{
			ProductID:   r.ProductID,
			WarehouseID: r.WarehouseID,
			BatchID:     r.BatchID,
			SKU:         r.SKU,
			ProductName: r.ProductName,
			Warehouse:   r.Warehouse,
			LotNo:       r.LotNo,
			ExpiryDate:  r.ExpiryDate,
			Qty:         r.Qty,
		})
	}
	return items, nil
}

// Movements devuelve el historial con referencias resueltas, más reciente
// primero. From/To en formato 2006-01-02; To es inclusivo (fin del día).
func (uc *ReportUseCase) Movements(q dto.MovementsQuery) (*dto.MovementListResponse, error) {
	filter, err := movementFilter(q)
	if err != nil {
		return nil, err
	}
	entries, err := uc.txnRepo.ListDetailed(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.MovementItem{
			ID:          e.ID,
			CreatedAt:   e.CreatedAt,
			TxnType:     e.TxnType,
			SKU:         e.SKU,
			ProductName: e.ProductName,
			Warehouse:   e.Warehouse,
			LotNo:       e.LotNo,
			Qty:         e.Qty,
			Direction:   e.Direction,
			Reason:      e.Reason,
			RefNo:       e.RefNo,
		})
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

// ExportResult archivo listo para servir.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportLedger genera el archivo del ledger en el formato pedido. Un ledger
// vacío exporta igual (el PDF dice "0 รายการ"). Cualquier fallo del generador
// se reporta como ErrExport; no se sirven archivos a medias.
func (uc *ReportUseCase) ExportLedger(format string, q dto.MovementsQuery) (*ExportResult, error) {
	filter, err := movementFilter(q)
	if err != nil {
		return nil, err
	}
	entries, err := uc.txnRepo.ListDetailed(filter)
	if err != nil {
		return nil, err
	}
	printedAt := uc.clock()
	switch format {
	case FormatPDF:
		data, err := uc.pdfGen.Generate(entries, printedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: pdf: %v", domain.ErrExport, err)
		}
		return &ExportResult{
			Filename:    exportFilename(printedAt, "pdf"),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	case FormatXML:
		data, err := uc.xmlExp.Export(entries, printedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: xml: %v", domain.ErrExport, err)
		}
		return &ExportResult{
			Filename:    exportFilename(printedAt, "xml"),
			ContentType: "application/xml",
			Data:        data,
		}, nil
	default:
		return nil, fmt.Errorf("%w: formato %q", domain.ErrInvalidInput, format)
	}
}

func exportFilename(printedAt time.Time, ext string) string {
	return "transactions_" + printedAt.Format("2006-01-02") + "." + ext
}

func movementFilter(q dto.MovementsQuery) (repository.TransactionFilter, error) {
	filter := repository.TransactionFilter{
		TxnType: q.TxnType,
		Limit:   q.Limit,
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultMovementLimit
	}
	if q.From != "" {
		from, err := time.Parse("2006-01-02", q.From)
		if err != nil {
			return repository.TransactionFilter{}, fmt.Errorf("%w: from %q", domain.ErrInvalidInput, q.From)
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := time.Parse("2006-01-02", q.To)
		if err != nil {
			return repository.TransactionFilter{}, fmt.Errorf("%w: to %q", domain.ErrInvalidInput, q.To)
		}
		endOfDay := to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &endOfDay
	}
	return filter, nil
}
