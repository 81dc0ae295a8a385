package inventory_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/inventory"
)

func txn(txnType, productID, warehouseID, batchID, direction string, qty int64) *entity.InventoryTransaction {
	return &entity.InventoryTransaction{
		ProductID:   productID,
		WarehouseID: warehouseID,
		BatchID:     batchID,
		TxnType:     txnType,
		Qty:         decimal.NewFromInt(qty),
		Direction:   direction,
	}
}

// IN suma, OUT resta: IN 10 + OUT 3 = 7 para la misma clave.
func TestBalances_EntradaYSalida(t *testing.T) {
	txns := []*entity.InventoryTransaction{
		txn(entity.TxnTypeIN, "p1", "w1", "", "", 10),
		txn(entity.TxnTypeOUT, "p1", "w1", "", "", 3),
	}
	got := inventory.Balances(txns, inventory.GroupBy{})
	require.Len(t, got, 1)
	assert.True(t, got[inventory.BalanceKey{ProductID: "p1"}].Equal(decimal.NewFromInt(7)))
}

// ADJUST add suma qty, ADJUST shrink resta qty.
func TestBalances_AjusteConDireccion(t *testing.T) {
	txns := []*entity.InventoryTransaction{
		txn(entity.TxnTypeADJUST, "p1", "w1", "", entity.DirectionAdd, 5),
		txn(entity.TxnTypeADJUST, "p2", "w1", "", entity.DirectionShrink, 5),
	}
	got := inventory.Balances(txns, inventory.GroupBy{})
	assert.True(t, got[inventory.BalanceKey{ProductID: "p1"}].Equal(decimal.NewFromInt(5)))
	assert.True(t, got[inventory.BalanceKey{ProductID: "p2"}].Equal(decimal.NewFromInt(-5)))
}

// Filas legadas: la dirección viajaba en reason. Sin dirección ni reason
// reconocible, la fila cuenta como entrada.
func TestBalances_AjusteLegadoUsaReason(t *testing.T) {
	legacy := txn(entity.TxnTypeADJUST, "p1", "w1", "", "", 4)
	legacy.Reason = "shrink"
	unknown := txn(entity.TxnTypeADJUST, "p2", "w1", "", "", 2)
	unknown.Reason = "conteo físico"

	got := inventory.Balances([]*entity.InventoryTransaction{legacy, unknown}, inventory.GroupBy{})
	assert.True(t, got[inventory.BalanceKey{ProductID: "p1"}].Equal(decimal.NewFromInt(-4)))
	assert.True(t, got[inventory.BalanceKey{ProductID: "p2"}].Equal(decimal.NewFromInt(2)))
}

// El fold es conmutativo: cualquier permutación del ledger da el mismo mapa.
func TestBalances_IndependienteDelOrden(t *testing.T) {
	txns := []*entity.InventoryTransaction{
		txn(entity.TxnTypeIN, "p1", "w1", "b1", "", 100),
		txn(entity.TxnTypeOUT, "p1", "w1", "b1", "", 30),
		txn(entity.TxnTypeADJUST, "p1", "w1", "b1", entity.DirectionShrink, 7),
		txn(entity.TxnTypeIN, "p1", "w2", "", "", 50),
		txn(entity.TxnTypeOUT, "p2", "w1", "", "", 9),
	}
	want := inventory.Balances(txns, inventory.GroupBy{Warehouse: true, Batch: true})

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]*entity.InventoryTransaction, len(txns))
		copy(shuffled, txns)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := inventory.Balances(shuffled, inventory.GroupBy{Warehouse: true, Batch: true})
		require.Equal(t, len(want), len(got))
		for k, v := range want {
			assert.True(t, got[k].Equal(v), "clave %+v: esperado %s, obtenido %s", k, v, got[k])
		}
	}
}

// Agrupar solo por producto colapsa bodegas y lotes en un total.
func TestBalances_AgrupadoPorProducto(t *testing.T) {
	txns := []*entity.InventoryTransaction{
		txn(entity.TxnTypeIN, "p1", "w1", "b1", "", 10),
		txn(entity.TxnTypeIN, "p1", "w2", "b2", "", 5),
		txn(entity.TxnTypeOUT, "p1", "w1", "", "", 4),
	}
	got := inventory.Balances(txns, inventory.GroupBy{})
	require.Len(t, got, 1)
	assert.True(t, got[inventory.BalanceKey{ProductID: "p1"}].Equal(decimal.NewFromInt(11)))
}

// Ledger vacío: mapa vacío definido, no nil con entradas parciales.
func TestBalances_LedgerVacio(t *testing.T) {
	got := inventory.Balances(nil, inventory.GroupBy{})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

// El saldo puede quedar negativo: el diseño no lo impide.
func TestBalances_PermiteSaldoNegativo(t *testing.T) {
	txns := []*entity.InventoryTransaction{
		txn(entity.TxnTypeOUT, "p1", "w1", "", "", 8),
	}
	got := inventory.Balances(txns, inventory.GroupBy{})
	assert.True(t, got[inventory.BalanceKey{ProductID: "p1"}].Equal(decimal.NewFromInt(-8)))
}

func TestIsLowStock(t *testing.T) {
	cases := []struct {
		name    string
		balance int64
		minQty  int64
		want    bool
	}{
		{"por debajo del umbral", 3, 5, true},
		{"igual al umbral", 5, 5, false},
		{"por encima del umbral", 9, 5, false},
		{"sin umbral configurado", 3, 0, false},
		{"sin umbral y saldo negativo", -10, 0, false},
		{"umbral y saldo negativo", -1, 5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := inventory.IsLowStock(decimal.NewFromInt(tc.balance), decimal.NewFromInt(tc.minQty))
			assert.Equal(t, tc.want, got)
		})
	}
}
