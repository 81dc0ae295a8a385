package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBalance es una fila de la vista inventory_current: saldo actual de un
// producto en una bodega (y lote, si aplica). La vista la mantiene la base de
// datos; el cliente nunca la escribe.
type StockBalance struct {
	ProductID   string
	WarehouseID string
	BatchID     string // vacío = sin lote
	Qty         decimal.Decimal
	SKU         string
	ProductName string
	Warehouse   string
	LotNo       string
	ExpiryDate  *time.Time
}
