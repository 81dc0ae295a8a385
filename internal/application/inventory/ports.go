package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que crear un lote y registrar el
// movimiento sean una sola escritura atómica (sin lotes huérfanos).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txnRepo repository.TransactionRepository,
		batchRepo repository.BatchRepository,
	) error) error
}

// BalanceCache cache opcional de totales por producto. Se invalida completo
// en cada registro exitoso; un fallo del cache nunca rompe la operación.
type BalanceCache interface {
	GetProductTotals(ctx context.Context) (map[string]decimal.Decimal, bool, error)
	SetProductTotals(ctx context.Context, totals map[string]decimal.Decimal) error
	Invalidate(ctx context.Context) error
}
