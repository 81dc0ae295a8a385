package dto

import (
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest body para POST /api/inventory/transactions.
// Resolución de lote: batch_id directo; si no, lot_no crea un lote nuevo
// (con expiry_date opcional); si ninguno, la transacción queda sin lote.
type RecordTransactionRequest struct {
	ProductID   string           `json:"product_id" validate:"required"`
	WarehouseID string           `json:"warehouse_id" validate:"required"`
	BatchID     string           `json:"batch_id"`
	LotNo       string           `json:"lot_no"`
	ExpiryDate  string           `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	TxnType     string           `json:"txn_type" validate:"required,oneof=IN OUT ADJUST"`
	Qty         decimal.Decimal  `json:"qty"`
	UnitCost    *decimal.Decimal `json:"unit_cost"`
	Direction   string           `json:"direction" validate:"omitempty,oneof=add shrink"`
	Reason      string           `json:"reason"`
	RefNo       string           `json:"ref_no"`
}

// RecordTransactionResponse identidad de la transacción creada.
type RecordTransactionResponse struct {
	ID string `json:"id"`
}

// BalanceQuery filtros y agrupación para GET /api/inventory/balances.
type BalanceQuery struct {
	ProductID        string `query:"product_id"`
	WarehouseID      string `query:"warehouse_id"`
	BatchID          string `query:"batch_id"`
	GroupByWarehouse bool   `query:"by_warehouse"`
	GroupByBatch     bool   `query:"by_batch"`
}

// BalanceItem un saldo agregado.
type BalanceItem struct {
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id,omitempty"`
	BatchID     string          `json:"batch_id,omitempty"`
	Qty         decimal.Decimal `json:"qty"`
	LowStock    *bool           `json:"low_stock,omitempty"` // solo al agrupar por producto
}

// BalanceListResponse respuesta de saldos.
type BalanceListResponse struct {
	Items []BalanceItem `json:"items"`
	Total int           `json:"total"`
}
