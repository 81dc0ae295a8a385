package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

func TestGenerate_LedgerVacio(t *testing.T) {
	g := NewMarotoLedgerGenerator("") // sin fuentes: cae a helvetica
	data, err := g.Generate(nil, time.Now())
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerate_ConFilas(t *testing.T) {
	g := NewMarotoLedgerGenerator("")
	entries := []*entity.LedgerEntry{
		{
			ID:          "1",
			CreatedAt:   time.Date(2026, 1, 31, 7, 30, 0, 0, time.UTC),
			TxnType:     entity.TxnTypeIN,
			Qty:         decimal.NewFromInt(1234),
			SKU:         "SKU-1",
			ProductName: "Producto 1",
			Warehouse:   "Bodega Central",
			LotNo:       "LOT-1",
			RefNo:       "PO-1001",
		},
		{
			ID:        "2",
			CreatedAt: time.Date(2026, 1, 30, 12, 0, 0, 0, time.UTC),
			TxnType:   entity.TxnTypeADJUST,
			Qty:       decimal.NewFromInt(5),
			Direction: entity.DirectionShrink,
			Reason:    "conteo físico",
		},
	}
	data, err := g.Generate(entries, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

// El timestamp se imprime en hora de Bangkok con año en era budista.
func TestFormatTimestamp_EraBudistaBangkok(t *testing.T) {
	g := NewMarotoLedgerGenerator("")
	// 2026-01-31 18:30 UTC = 2026-02-01 01:30 en Bangkok (UTC+7); 2026+543 = 2569
	ts := time.Date(2026, 1, 31, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "1/2/2569 01:30", g.formatTimestamp(ts))
}

func TestFormatSignedQty(t *testing.T) {
	g := NewMarotoLedgerGenerator("")
	cases := []struct {
		entry entity.LedgerEntry
		want  string
	}{
		{entity.LedgerEntry{TxnType: entity.TxnTypeIN, Qty: decimal.NewFromInt(1234)}, "+1,234"},
		{entity.LedgerEntry{TxnType: entity.TxnTypeOUT, Qty: decimal.NewFromInt(500)}, "-500"},
		{entity.LedgerEntry{TxnType: entity.TxnTypeADJUST, Qty: decimal.NewFromInt(7), Direction: entity.DirectionShrink}, "-7"},
		{entity.LedgerEntry{TxnType: entity.TxnTypeIN, Qty: decimal.RequireFromString("10500.25")}, "+10,500.25"},
	}
	for _, c := range cases {
		e := c.entry
		assert.Equal(t, c.want, g.formatSignedQty(&e))
	}
}
