// Package pdf implementa la generación del reporte PDF del ledger de
// movimientos, fiel a la pantalla de historial que imprime el cliente:
// A4 apaisado, rótulos en tailandés, fechas en era budista (zona de Bangkok)
// y cantidades con agrupación de miles.
//
// Layout de la página:
//
//	┌──────────────────────────────────────────────────────────────────┐
//	│  TÍTULO + fecha de impresión                                     │
//	│  ───────────────────────────────────────────────────────────────│
//	│  TABLA: เวลา | ประเภท | SKU | สินค้า | คลัง | Lot | จำนวน | เหตุผล | อ้างอิง │
//	│  ───────────────────────────────────────────────────────────────│
//	│  FOOTER: รวม N รายการ              หน้า x / y                     │
//	└──────────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Kardex-api/internal/application/report"
	domentity "github.com/jhoicas/Kardex-api/internal/domain/entity"
)

var _ report.LedgerPDFGenerator = (*MarotoLedgerGenerator)(nil)

const thaiFontFamily = "notosansthai"

// Rótulos de la tabla, en el orden de la pantalla de historial.
var columnLabels = []string{"เวลา", "ประเภท", "SKU", "สินค้า", "คลัง", "Lot", "จำนวน", "เหตุผล", "อ้างอิง"}

// Anchos por columna sobre la grilla de 12 de Maroto.
var columnWidths = []int{2, 1, 1, 2, 2, 1, 1, 1, 1}

var (
	colorHeader = &props.Color{Red: 45, Green: 45, Blue: 45}
	colorGray   = &props.Color{Red: 110, Green: 110, Blue: 110}
)

// MarotoLedgerGenerator arma el PDF del ledger usando Maroto v2.
type MarotoLedgerGenerator struct {
	fontDir  string
	fonts    []*entity.CustomFont
	family   string
	location *time.Location
	printer  *message.Printer
}

// NewMarotoLedgerGenerator construye el generador. fontDir apunta al
// directorio con NotoSansThai-*.ttf; si las fuentes no están, cae a
// helvetica (el texto tailandés saldrá con glifos de reemplazo, pero la
// exportación no se bloquea).
func NewMarotoLedgerGenerator(fontDir string) *MarotoLedgerGenerator {
	g := &MarotoLedgerGenerator{
		fontDir: fontDir,
		family:  "helvetica",
		printer: message.NewPrinter(language.Thai),
	}
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		loc = time.FixedZone("ICT", 7*3600)
	}
	g.location = loc

	if fonts, err := loadThaiFonts(fontDir); err == nil {
		g.fonts = fonts
		g.family = thaiFontFamily
	}
	return g
}

func loadThaiFonts(dir string) ([]*entity.CustomFont, error) {
	if dir == "" {
		return nil, fmt.Errorf("sin directorio de fuentes")
	}
	regular := filepath.Join(dir, "NotoSansThai-Regular.ttf")
	if _, err := os.Stat(regular); err != nil {
		return nil, err
	}
	bold := filepath.Join(dir, "NotoSansThai-Bold.ttf")
	if _, err := os.Stat(bold); err != nil {
		bold = regular
	}
	return repository.New().
		AddUTF8Font(thaiFontFamily, fontstyle.Normal, regular).
		AddUTF8Font(thaiFontFamily, fontstyle.Bold, bold).
		AddUTF8Font(thaiFontFamily, fontstyle.Italic, regular).
		AddUTF8Font(thaiFontFamily, fontstyle.BoldItalic, bold).
		Load()
}

// Generate genera el PDF y devuelve sus bytes. Un ledger vacío produce un
// documento válido con la tabla vacía y el contador en "0 รายการ".
func (g *MarotoLedgerGenerator) Generate(entries []*domentity.LedgerEntry, printedAt time.Time) ([]byte, error) {
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(10).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: g.family, Size: 8}).
		WithPageNumber(props.PageNumber{Pattern: "หน้า {current} / {total}", Place: props.RightBottom, Family: g.family, Size: 7}).
		WithTitle("รายงานความเคลื่อนไหวสต็อก", true)
	if g.fonts != nil {
		builder = builder.WithCustomFonts(g.fonts)
	}
	m := maroto.New(builder.Build())

	if err := m.RegisterFooter(g.footerRow(len(entries))); err != nil {
		return nil, fmt.Errorf("pdf: registrar footer: %w", err)
	}

	m.AddRows(g.titleRows(printedAt)...)
	m.AddRows(g.tableHeaderRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorHeader, Thickness: 0.4}))
	for _, e := range entries {
		m.AddRows(g.entryRow(e))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoLedgerGenerator) titleRows(printedAt time.Time) []core.Row {
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("รายงานความเคลื่อนไหวสต็อก", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorHeader,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New("พิมพ์เมื่อ "+g.formatTimestamp(printedAt), props.Text{
				Size: 7, Color: colorGray,
			}),
		)),
		row.New(2),
	}
}

func (g *MarotoLedgerGenerator) tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(columnLabels))
	for i, label := range columnLabels {
		a := align.Left
		if label == "จำนวน" {
			a = align.Right
		}
		cols = append(cols, col.New(columnWidths[i]).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: a, Color: colorHeader, Top: 1}),
		))
	}
	return row.New(7).Add(cols...)
}

func (g *MarotoLedgerGenerator) entryRow(e *domentity.LedgerEntry) core.Row {
	cell := func(width int, value string, a align.Type) core.Col {
		return col.New(width).Add(text.New(value, props.Text{Size: 7.5, Align: a, Top: 1}))
	}
	return row.New(6).Add(
		cell(columnWidths[0], g.formatTimestamp(e.CreatedAt), align.Left),
		cell(columnWidths[1], txnTypeLabel(e), align.Left),
		cell(columnWidths[2], e.SKU, align.Left),
		cell(columnWidths[3], e.ProductName, align.Left),
		cell(columnWidths[4], e.Warehouse, align.Left),
		cell(columnWidths[5], orDash(e.LotNo), align.Left),
		cell(columnWidths[6], g.formatSignedQty(e), align.Right),
		cell(columnWidths[7], orDash(e.Reason), align.Left),
		cell(columnWidths[8], orDash(e.RefNo), align.Left),
	)
}

// footerRow fija "รวม N รายการ" al pie de cada página.
func (g *MarotoLedgerGenerator) footerRow(count int) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("รวม %s รายการ", g.groupDigits(int64(count))), props.Text{
			Size: 7.5, Color: colorGray, Top: 1,
		}),
	))
}

// formatTimestamp fecha corta tailandesa en hora de Bangkok: el año va en
// era budista (+543).
func (g *MarotoLedgerGenerator) formatTimestamp(t time.Time) string {
	local := t.In(g.location)
	return fmt.Sprintf("%d/%d/%d %02d:%02d",
		local.Day(), int(local.Month()), local.Year()+543, local.Hour(), local.Minute())
}

// formatSignedQty cantidad con signo y miles agrupados: "+1,234" / "-500".
func (g *MarotoLedgerGenerator) formatSignedQty(e *domentity.LedgerEntry) string {
	signed := e.SignedQty()
	sign := "+"
	if signed.IsNegative() {
		sign = "-"
	}
	abs := signed.Abs()
	intPart := abs.Truncate(0)
	grouped := g.groupDigits(intPart.IntPart())
	if frac := abs.Sub(intPart); !frac.IsZero() {
		fracStr := strings.TrimPrefix(frac.String(), "0")
		return sign + grouped + fracStr
	}
	return sign + grouped
}

func (g *MarotoLedgerGenerator) groupDigits(n int64) string {
	return g.printer.Sprintf("%d", n)
}

func txnTypeLabel(e *domentity.LedgerEntry) string {
	switch e.TxnType {
	case domentity.TxnTypeIN:
		return "รับเข้า"
	case domentity.TxnTypeOUT:
		return "จ่ายออก"
	case domentity.TxnTypeADJUST:
		return "ปรับยอด"
	default:
		return e.TxnType
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
