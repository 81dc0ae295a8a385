package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// BalanceViewRepository lee la vista inventory_current mantenida por la base.
// Ambos métodos devuelven domain.ErrViewMissing si la vista no existe (42P01).
type BalanceViewRepository interface {
	List() ([]*entity.StockBalance, error)
	// ProductTotals agrega la vista por producto (suma de todas las bodegas y lotes).
	ProductTotals() (map[string]decimal.Decimal, error)
}
