// Package xmlexport serializa el ledger a XML para integraciones externas
// (importación en otros sistemas de inventario o contabilidad).
package xmlexport

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/Kardex-api/internal/application/report"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

var _ report.LedgerXMLExporter = (*EtreeExporter)(nil)

// EtreeExporter arma el documento XML del ledger con etree.
type EtreeExporter struct{}

// NewEtreeExporter construye el exportador.
func NewEtreeExporter() *EtreeExporter { return &EtreeExporter{} }

// Export serializa las filas del ledger. Un ledger vacío produce un documento
// válido con count="0".
func (x *EtreeExporter) Export(entries []*entity.LedgerEntry, printedAt time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("inventory_transactions")
	root.CreateAttr("count", fmt.Sprintf("%d", len(entries)))
	root.CreateAttr("printed_at", printedAt.Format(time.RFC3339))

	for _, e := range entries {
		txn := root.CreateElement("transaction")
		txn.CreateAttr("id", e.ID)
		txn.CreateElement("created_at").SetText(e.CreatedAt.Format(time.RFC3339))
		txn.CreateElement("txn_type").SetText(e.TxnType)
		txn.CreateElement("sku").SetText(e.SKU)
		txn.CreateElement("product").SetText(e.ProductName)
		txn.CreateElement("warehouse").SetText(e.Warehouse)
		if e.LotNo != "" {
			txn.CreateElement("lot_no").SetText(e.LotNo)
		}
		txn.CreateElement("qty").SetText(e.Qty.String())
		txn.CreateElement("signed_qty").SetText(e.SignedQty().String())
		if e.Direction != "" {
			txn.CreateElement("direction").SetText(e.Direction)
		}
		if e.Reason != "" {
			txn.CreateElement("reason").SetText(e.Reason)
		}
		if e.RefNo != "" {
			txn.CreateElement("ref_no").SetText(e.RefNo)
		}
	}

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar ledger: %w", err)
	}
	return data, nil
}
