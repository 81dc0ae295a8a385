package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.BalanceViewRepository = (*BalanceViewRepo)(nil)

// BalanceViewRepo lee la vista inventory_current. La vista la mantiene la
// base (agregación del ledger); si todavía no existe, ambos métodos devuelven
// domain.ErrViewMissing para que la capa de arriba degrade a saldos en cero.
type BalanceViewRepo struct {
	q Querier
}

// NewBalanceViewRepository construye el adaptador de lectura de la vista.
func NewBalanceViewRepository(q Querier) *BalanceViewRepo {
	return &BalanceViewRepo{q: q}
}

// List trae la vista fila por fila con referencias resueltas.
func (r *BalanceViewRepo) List() ([]*entity.StockBalance, error) {
	query := `
		SELECT v.product_id, v.warehouse_id, COALESCE(v.batch_id::text, ''), v.qty,
		       p.sku, p.name, w.name, COALESCE(b.lot_no, ''), b.expiry_date
		FROM inventory_current v
		JOIN products p ON p.id = v.product_id
		JOIN warehouses w ON w.id = v.warehouse_id
		LEFT JOIN batches b ON b.id = v.batch_id
		ORDER BY p.sku, w.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, domain.ErrViewMissing
		}
		return nil, fmt.Errorf("list stock view: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockBalance
	for rows.Next() {
		var s entity.StockBalance
		if err := rows.Scan(&s.ProductID, &s.WarehouseID, &s.BatchID, &s.Qty,
			&s.SKU, &s.ProductName, &s.Warehouse, &s.LotNo, &s.ExpiryDate); err != nil {
			return nil, fmt.Errorf("scan stock view: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ProductTotals agrega la vista por producto (suma de bodegas y lotes).
func (r *BalanceViewRepo) ProductTotals() (map[string]decimal.Decimal, error) {
	query := `SELECT product_id, SUM(qty) FROM inventory_current GROUP BY product_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, domain.ErrViewMissing
		}
		return nil, fmt.Errorf("stock totals: %w", err)
	}
	defer rows.Close()
	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var productID string
		var qty decimal.Decimal
		if err := rows.Scan(&productID, &qty); err != nil {
			return nil, fmt.Errorf("scan stock total: %w", err)
		}
		totals[productID] = qty
	}
	return totals, rows.Err()
}
