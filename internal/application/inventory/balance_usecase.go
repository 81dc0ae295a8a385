package inventory

import (
	"context"
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Kardex-api/internal/domain/inventory"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// BalanceUseCase calcula saldos actuales. Dos caminos:
//   - CurrentBalances: fold sobre las filas crudas del ledger (la definición
//     canónica del saldo), con filtros y agrupación arbitrarios.
//   - ProductTotals: lectura de la vista inventory_current agregada por
//     producto, con cache opcional; si la vista no existe degrada a ceros.
type BalanceUseCase struct {
	txnRepo     repository.TransactionRepository
	productRepo repository.ProductRepository
	viewRepo    repository.BalanceViewRepository
	cache       BalanceCache // opcional, puede ser nil
}

// NewBalanceUseCase construye el caso de uso.
func NewBalanceUseCase(
	txnRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	viewRepo repository.BalanceViewRepository,
	cache BalanceCache,
) *BalanceUseCase {
	return &BalanceUseCase{txnRepo: txnRepo, productRepo: productRepo, viewRepo: viewRepo, cache: cache}
}

// CurrentBalances trae las filas del ledger que pasan los filtros y las
// reduce con la regla de signo. Si el fetch falla no hay mapa parcial: la
// operación entera falla. Sin filas devuelve una lista vacía, nunca nil.
func (uc *BalanceUseCase) CurrentBalances(_ context.Context, q dto.BalanceQuery) (*dto.BalanceListResponse, error) {
	filter := repository.TransactionFilter{
		ProductID:   q.ProductID,
		WarehouseID: q.WarehouseID,
		BatchID:     q.BatchID,
	}
	txns, err := uc.txnRepo.List(filter)
	if err != nil {
		return nil, err
	}

	groupBy := domaininv.GroupBy{Warehouse: q.GroupByWarehouse, Batch: q.GroupByBatch}
	balances := domaininv.Balances(txns, groupBy)

	keys := make([]domaininv.BalanceKey, 0, len(balances))
	for k := range balances {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.ProductID != b.ProductID {
			return a.ProductID < b.ProductID
		}
		if a.WarehouseID != b.WarehouseID {
			return a.WarehouseID < b.WarehouseID
		}
		return a.BatchID < b.BatchID
	})

	perProduct := !q.GroupByWarehouse && !q.GroupByBatch
	items := make([]dto.BalanceItem, 0, len(keys))
	for _, k := range keys {
		item := dto.BalanceItem{
			ProductID:   k.ProductID,
			WarehouseID: k.WarehouseID,
			BatchID:     k.BatchID,
			Qty:         balances[k],
		}
		if perProduct {
			low, err := uc.lowStockFlag(k.ProductID, balances[k])
			if err != nil {
				return nil, err
			}
			item.LowStock = &low
		}
		items = append(items, item)
	}
	return &dto.BalanceListResponse{Items: items, Total: len(items)}, nil
}

// lowStockFlag: true sii min_qty > 0 y saldo < min_qty.
func (uc *BalanceUseCase) lowStockFlag(productID string, balance decimal.Decimal) (bool, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return false, err
	}
	minQty := decimal.Zero
	if product != nil {
		minQty = product.MinQty
	}
	return domaininv.IsLowStock(balance, minQty), nil
}

// ProductTotals devuelve el total por producto desde la vista
// inventory_current, pasando por el cache si está configurado. Si la vista no
// existe todavía (42P01) devuelve un mapa vacío: los consumidores muestran
// saldo cero en lugar de romper la página.
func (uc *BalanceUseCase) ProductTotals(ctx context.Context) (map[string]decimal.Decimal, error) {
	if uc.cache != nil {
		if totals, ok, err := uc.cache.GetProductTotals(ctx); err == nil && ok {
			return totals, nil
		}
	}
	totals, err := uc.viewRepo.ProductTotals()
	if err != nil {
		if errors.Is(err, domain.ErrViewMissing) {
			return map[string]decimal.Decimal{}, nil
		}
		return nil, err
	}
	if uc.cache != nil {
		_ = uc.cache.SetProductTotals(ctx, totals)
	}
	return totals, nil
}

// LowStockForProduct expone el flag para un producto ya cargado.
func LowStockForProduct(p *entity.Product, balance decimal.Decimal) bool {
	if p == nil {
		return false
	}
	return domaininv.IsLowStock(balance, p.MinQty)
}
