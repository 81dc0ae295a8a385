package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto del ledger sobre PostgreSQL
// (usable con pool o tx). Solo INSERT y SELECT: el ledger es append-only.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de persistencia del ledger.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create agrega una fila al ledger.
func (r *TransactionRepo) Create(txn *entity.InventoryTransaction) error {
	query := `
		INSERT INTO inventory_transactions
			(id, created_at, product_id, warehouse_id, batch_id, txn_type, qty, unit_cost, direction, reason, ref_no, created_by)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''), $12)`
	_, err := r.q.Exec(context.Background(), query,
		txn.ID, txn.CreatedAt, txn.ProductID, txn.WarehouseID, txn.BatchID,
		txn.TxnType, txn.Qty, txn.UnitCost, txn.Direction, txn.Reason, txn.RefNo, txn.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

const txnColumns = `id, created_at, product_id, warehouse_id, COALESCE(batch_id::text, ''), txn_type, qty, unit_cost, COALESCE(direction, ''), COALESCE(reason, ''), COALESCE(ref_no, ''), created_by`

// GetByID obtiene una transacción por ID.
func (r *TransactionRepo) GetByID(id string) (*entity.InventoryTransaction, error) {
	query := `SELECT ` + txnColumns + ` FROM inventory_transactions WHERE id = $1`
	var t entity.InventoryTransaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.CreatedAt, &t.ProductID, &t.WarehouseID, &t.BatchID,
		&t.TxnType, &t.Qty, &t.UnitCost, &t.Direction, &t.Reason, &t.RefNo, &t.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// List trae filas crudas del ledger que pasan el filtro, más recientes primero.
func (r *TransactionRepo) List(filter repository.TransactionFilter) ([]*entity.InventoryTransaction, error) {
	where, args := buildTxnWhere(filter, "t")
	query := `SELECT ` + txnColumns + ` FROM inventory_transactions t` + where +
		` ORDER BY t.created_at DESC, t.id DESC` + buildTxnPage(filter)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryTransaction
	for rows.Next() {
		var t entity.InventoryTransaction
		if err := rows.Scan(&t.ID, &t.CreatedAt, &t.ProductID, &t.WarehouseID, &t.BatchID,
			&t.TxnType, &t.Qty, &t.UnitCost, &t.Direction, &t.Reason, &t.RefNo, &t.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// ListDetailed trae el ledger con SKU, nombres y lote resueltos, para
// reportes y exportación.
func (r *TransactionRepo) ListDetailed(filter repository.TransactionFilter) ([]*entity.LedgerEntry, error) {
	where, args := buildTxnWhere(filter, "t")
	query := `
		SELECT t.id, t.created_at, t.txn_type, t.qty,
		       COALESCE(t.direction, ''), COALESCE(t.reason, ''), COALESCE(t.ref_no, ''),
		       p.sku, p.name, w.name, COALESCE(b.lot_no, '')
		FROM inventory_transactions t
		JOIN products p ON p.id = t.product_id
		JOIN warehouses w ON w.id = t.warehouse_id
		LEFT JOIN batches b ON b.id = t.batch_id` + where +
		` ORDER BY t.created_at DESC, t.id DESC` + buildTxnPage(filter)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions detailed: %w", err)
	}
	defer rows.Close()
	var list []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.TxnType, &e.Qty,
			&e.Direction, &e.Reason, &e.RefNo,
			&e.SKU, &e.ProductName, &e.Warehouse, &e.LotNo); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// buildTxnWhere arma la cláusula WHERE y los args según los campos no vacíos del filtro.
func buildTxnWhere(filter repository.TransactionFilter, alias string) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, alias+"."+cond+"$"+strconv.Itoa(len(args)))
	}
	if filter.ProductID != "" {
		add("product_id = ", filter.ProductID)
	}
	if filter.WarehouseID != "" {
		add("warehouse_id = ", filter.WarehouseID)
	}
	if filter.BatchID != "" {
		add("batch_id = ", filter.BatchID)
	}
	if filter.TxnType != "" {
		add("txn_type = ", filter.TxnType)
	}
	if filter.From != nil {
		add("created_at >= ", *filter.From)
	}
	if filter.To != nil {
		add("created_at <= ", *filter.To)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func buildTxnPage(filter repository.TransactionFilter) string {
	var b strings.Builder
	if filter.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		fmt.Fprintf(&b, " OFFSET %d", filter.Offset)
	}
	return b.String()
}
