package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry es una transacción del ledger con sus referencias ya resueltas
// (SKU, nombres, lote) para reportes y exportación.
type LedgerEntry struct {
	ID          string
	CreatedAt   time.Time
	TxnType     string
	Qty         decimal.Decimal
	Direction   string
	Reason      string
	RefNo       string
	SKU         string
	ProductName string
	Warehouse   string
	LotNo       string // vacío = sin lote
}

// SignedQty aplica la misma regla de signo que InventoryTransaction.SignedQty.
func (e *LedgerEntry) SignedQty() decimal.Decimal {
	t := InventoryTransaction{TxnType: e.TxnType, Qty: e.Qty, Direction: e.Direction, Reason: e.Reason}
	return t.SignedQty()
}
