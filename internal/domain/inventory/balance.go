// Package inventory contiene la lógica pura de saldos del kardex:
// un fold conmutativo y asociativo sobre el ledger, sin I/O.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// BalanceKey identifica un saldo. ProductID siempre presente; WarehouseID y
// BatchID quedan vacíos cuando no se agrupa por esa dimensión.
type BalanceKey struct {
	ProductID   string
	WarehouseID string
	BatchID     string
}

// GroupBy controla las dimensiones de agrupación además del producto.
type GroupBy struct {
	Warehouse bool
	Batch     bool
}

// Balances reduce las transacciones a un mapa clave→cantidad firmada.
// Regla de signo: IN suma, OUT resta, ADJUST según su dirección.
// La reducción es independiente del orden de las filas, así que es seguro
// calcularla sobre cualquier fetch parcial o reordenado del ledger.
// Con cero filas devuelve un mapa vacío, nunca nil parcial.
func Balances(txns []*entity.InventoryTransaction, g GroupBy) map[BalanceKey]decimal.Decimal {
	out := make(map[BalanceKey]decimal.Decimal, len(txns))
	for _, t := range txns {
		key := BalanceKey{ProductID: t.ProductID}
		if g.Warehouse {
			key.WarehouseID = t.WarehouseID
		}
		if g.Batch {
			key.BatchID = t.BatchID
		}
		out[key] = out[key].Add(t.SignedQty())
	}
	return out
}

// IsLowStock indica si un saldo está por debajo del umbral configurado.
// Con minQty en cero el flag es siempre false, incluso con saldo negativo.
func IsLowStock(balance, minQty decimal.Decimal) bool {
	return minQty.GreaterThan(decimal.Zero) && balance.LessThan(minQty)
}
