package xmlexport

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

func TestExport_DocumentoCompleto(t *testing.T) {
	exporter := NewEtreeExporter()
	entries := []*entity.LedgerEntry{
		{
			ID:          "t1",
			CreatedAt:   time.Date(2026, 1, 31, 7, 0, 0, 0, time.UTC),
			TxnType:     entity.TxnTypeOUT,
			Qty:         decimal.NewFromInt(3),
			SKU:         "SKU-1",
			ProductName: "Producto 1",
			Warehouse:   "Bodega 1",
			LotNo:       "LOT-A",
			Reason:      "venta",
		},
		{
			ID:        "t2",
			CreatedAt: time.Date(2026, 1, 30, 7, 0, 0, 0, time.UTC),
			TxnType:   entity.TxnTypeIN,
			Qty:       decimal.NewFromInt(10),
			SKU:       "SKU-2",
		},
	}

	data, err := exporter.Export(entries, time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))

	root := doc.SelectElement("inventory_transactions")
	require.NotNil(t, root)
	assert.Equal(t, "2", root.SelectAttrValue("count", ""))
	assert.Equal(t, "2026-02-01T12:00:00Z", root.SelectAttrValue("printed_at", ""))

	txns := root.SelectElements("transaction")
	require.Len(t, txns, 2)
	first := txns[0]
	assert.Equal(t, "t1", first.SelectAttrValue("id", ""))
	assert.Equal(t, "OUT", first.SelectElement("txn_type").Text())
	assert.Equal(t, "3", first.SelectElement("qty").Text())
	assert.Equal(t, "-3", first.SelectElement("signed_qty").Text())
	assert.Equal(t, "LOT-A", first.SelectElement("lot_no").Text())

	// Los campos vacíos se omiten
	second := txns[1]
	assert.Nil(t, second.SelectElement("lot_no"))
	assert.Nil(t, second.SelectElement("reason"))
}

func TestExport_LedgerVacio(t *testing.T) {
	exporter := NewEtreeExporter()
	data, err := exporter.Export(nil, time.Now())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))
	root := doc.SelectElement("inventory_transactions")
	require.NotNil(t, root)
	assert.Equal(t, "0", root.SelectAttrValue("count", ""))
	assert.Empty(t, root.SelectElements("transaction"))
}
