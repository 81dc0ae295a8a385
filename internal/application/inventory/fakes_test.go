package inventory_test

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory de los puertos, para probar usecases sin PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
	err      error
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if r.err != nil {
		return r.err
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.products[id], nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateImageURL(id, url string) error {
	if p, ok := r.products[id]; ok {
		p.ImageURL = url
	}
	return nil
}

func (r *fakeProductRepo) List(onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	list := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if onlyActive && !p.IsActive {
			continue
		}
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo(warehouses ...*entity.Warehouse) *fakeWarehouseRepo {
	m := make(map[string]*entity.Warehouse)
	for _, w := range warehouses {
		m[w.ID] = w
	}
	return &fakeWarehouseRepo{warehouses: m}
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}
func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	list := make([]*entity.Warehouse, 0, len(r.warehouses))
	for _, w := range r.warehouses {
		list = append(list, w)
	}
	return list, nil
}
func (r *fakeWarehouseRepo) Delete(id string) error { delete(r.warehouses, id); return nil }

type fakeBatchRepo struct {
	batches   map[string]*entity.Batch
	createErr error
}

func newFakeBatchRepo(batches ...*entity.Batch) *fakeBatchRepo {
	m := make(map[string]*entity.Batch)
	for _, b := range batches {
		m[b.ID] = b
	}
	return &fakeBatchRepo{batches: m}
}

func (r *fakeBatchRepo) Create(b *entity.Batch) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.batches[b.ID] = b
	return nil
}

func (r *fakeBatchRepo) GetByID(id string) (*entity.Batch, error) { return r.batches[id], nil }

func (r *fakeBatchRepo) ListByProduct(productID string) ([]*entity.Batch, error) {
	var list []*entity.Batch
	for _, b := range r.batches {
		if b.ProductID == productID {
			list = append(list, b)
		}
	}
	return list, nil
}

type fakeTxnRepo struct {
	rows      []*entity.InventoryTransaction
	createErr error
	listErr   error
}

func (r *fakeTxnRepo) Create(txn *entity.InventoryTransaction) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.rows = append(r.rows, txn)
	return nil
}

func (r *fakeTxnRepo) GetByID(id string) (*entity.InventoryTransaction, error) {
	for _, t := range r.rows {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTxnRepo) List(filter repository.TransactionFilter) ([]*entity.InventoryTransaction, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var list []*entity.InventoryTransaction
	for _, t := range r.rows {
		if filter.ProductID != "" && t.ProductID != filter.ProductID {
			continue
		}
		if filter.WarehouseID != "" && t.WarehouseID != filter.WarehouseID {
			continue
		}
		if filter.BatchID != "" && t.BatchID != filter.BatchID {
			continue
		}
		if filter.TxnType != "" && t.TxnType != filter.TxnType {
			continue
		}
		list = append(list, t)
	}
	return list, nil
}

func (r *fakeTxnRepo) ListDetailed(filter repository.TransactionFilter) ([]*entity.LedgerEntry, error) {
	txns, err := r.List(filter)
	if err != nil {
		return nil, err
	}
	entries := make([]*entity.LedgerEntry, 0, len(txns))
	for _, t := range txns {
		entries = append(entries, &entity.LedgerEntry{
			ID: t.ID, CreatedAt: t.CreatedAt, TxnType: t.TxnType, Qty: t.Qty,
			Direction: t.Direction, Reason: t.Reason, RefNo: t.RefNo,
		})
	}
	return entries, nil
}

// fakeTxRunner imita el Commit/Rollback del TxRunner real: si fn falla,
// descarta las filas y lotes escritos durante el callback.
type fakeTxRunner struct {
	txnRepo   *fakeTxnRepo
	batchRepo *fakeBatchRepo
	beginErr  error
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	txnRepo repository.TransactionRepository,
	batchRepo repository.BatchRepository,
) error) error {
	if r.beginErr != nil {
		return r.beginErr
	}
	rowsBefore := len(r.txnRepo.rows)
	batchesBefore := make(map[string]*entity.Batch, len(r.batchRepo.batches))
	for k, v := range r.batchRepo.batches {
		batchesBefore[k] = v
	}
	if err := fn(r.txnRepo, r.batchRepo); err != nil {
		r.txnRepo.rows = r.txnRepo.rows[:rowsBefore]
		r.batchRepo.batches = batchesBefore
		return err
	}
	return nil
}

type fakeViewRepo struct {
	balances []*entity.StockBalance
	err      error
}

func (r *fakeViewRepo) List() ([]*entity.StockBalance, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.balances, nil
}

func (r *fakeViewRepo) ProductTotals() (map[string]decimal.Decimal, error) {
	if r.err != nil {
		return nil, r.err
	}
	totals := make(map[string]decimal.Decimal)
	for _, b := range r.balances {
		totals[b.ProductID] = totals[b.ProductID].Add(b.Qty)
	}
	return totals, nil
}

type fakeBalanceCache struct {
	totals      map[string]decimal.Decimal
	cached      bool
	invalidated int
}

func (c *fakeBalanceCache) GetProductTotals(context.Context) (map[string]decimal.Decimal, bool, error) {
	return c.totals, c.cached, nil
}

func (c *fakeBalanceCache) SetProductTotals(_ context.Context, totals map[string]decimal.Decimal) error {
	c.totals = totals
	c.cached = true
	return nil
}

func (c *fakeBalanceCache) Invalidate(context.Context) error {
	c.totals = nil
	c.cached = false
	c.invalidated++
	return nil
}
