package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrentStockItem fila del reporte de stock actual (desde inventory_current).
type CurrentStockItem struct {
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id"`
	BatchID     string          `json:"batch_id,omitempty"`
	SKU         string          `json:"sku"`
	ProductName string          `json:"product_name"`
	Warehouse   string          `json:"warehouse"`
	LotNo       string          `json:"lot_no,omitempty"`
	ExpiryDate  *time.Time      `json:"expiry_date,omitempty"`
	Qty         decimal.Decimal `json:"qty"`
}

// MovementsQuery filtros para el reporte de movimientos.
type MovementsQuery struct {
	From    string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To      string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	TxnType string `query:"txn_type" validate:"omitempty,oneof=IN OUT ADJUST"`
	Limit   int    `query:"limit" validate:"omitempty,min=1,max=1000"`
}

// MovementItem fila del reporte de movimientos, con referencias resueltas.
type MovementItem struct {
	ID          string          `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	TxnType     string          `json:"txn_type"`
	SKU         string          `json:"sku"`
	ProductName string          `json:"product_name"`
	Warehouse   string          `json:"warehouse"`
	LotNo       string          `json:"lot_no,omitempty"`
	Qty         decimal.Decimal `json:"qty"`
	Direction   string          `json:"direction,omitempty"`
	Reason      string          `json:"reason,omitempty"`
	RefNo       string          `json:"ref_no,omitempty"`
}

// MovementListResponse reporte de movimientos.
type MovementListResponse struct {
	Items []MovementItem `json:"items"`
	Total int            `json:"total"`
}
