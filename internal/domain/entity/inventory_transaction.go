package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del ledger.
const (
	TxnTypeIN     = "IN"     // entrada
	TxnTypeOUT    = "OUT"    // salida
	TxnTypeADJUST = "ADJUST" // ajuste, con dirección explícita
)

// Direcciones de un ajuste. Antes la dirección viajaba dentro de reason;
// ahora es un campo propio y reason vuelve a ser texto libre.
const (
	DirectionAdd    = "add"    // suma al saldo
	DirectionShrink = "shrink" // resta del saldo
)

// InventoryTransaction es una fila del ledger: append-only, nunca se
// actualiza ni se borra. Qty se guarda siempre positiva; el signo lo da
// TxnType (y Direction cuando es ADJUST).
type InventoryTransaction struct {
	ID          string
	CreatedAt   time.Time
	ProductID   string
	WarehouseID string
	BatchID     string // vacío = sin lote
	TxnType     string
	Qty         decimal.Decimal  // estrictamente > 0
	UnitCost    *decimal.Decimal // opcional, solo informativo
	Direction   string           // add | shrink, solo para ADJUST
	Reason      string           // texto libre
	RefNo       string           // referencia externa; sin unicidad impuesta
	CreatedBy   string
}

// SignedQty devuelve la cantidad con el signo que aporta al saldo.
// Filas ADJUST legadas sin Direction caen a interpretar Reason; si tampoco
// trae add/shrink, la fila cuenta como entrada.
func (t *InventoryTransaction) SignedQty() decimal.Decimal {
	switch t.TxnType {
	case TxnTypeOUT:
		return t.Qty.Neg()
	case TxnTypeADJUST:
		dir := t.Direction
		if dir == "" {
			dir = t.Reason
		}
		if dir == DirectionShrink {
			return t.Qty.Neg()
		}
		return t.Qty
	default:
		return t.Qty
	}
}
