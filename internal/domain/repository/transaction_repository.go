package repository

import (
	"time"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// TransactionFilter acota un fetch del ledger. Los campos vacíos no filtran.
type TransactionFilter struct {
	ProductID   string
	WarehouseID string
	BatchID     string
	TxnType     string
	From        *time.Time
	To          *time.Time
	Limit       int // 0 = sin límite
	Offset      int
}

// TransactionRepository define el puerto de persistencia del ledger.
// El ledger es append-only: no hay Update ni Delete.
type TransactionRepository interface {
	Create(txn *entity.InventoryTransaction) error
	GetByID(id string) (*entity.InventoryTransaction, error)
	List(filter TransactionFilter) ([]*entity.InventoryTransaction, error)
	// ListDetailed resuelve SKU, nombres y lote para reportes y exportación,
	// más recientes primero.
	ListDetailed(filter TransactionFilter) ([]*entity.LedgerEntry, error)
}
