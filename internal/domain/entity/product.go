package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// El stock NO vive aquí: se deriva del ledger (ver inventory.Balances)
// o de la vista inventory_current mantenida por la base.
type Product struct {
	ID         string
	SKU        string // código único de negocio
	Name       string
	Unit       string          // unidad de medida: pcs, kg, caja...
	Price      decimal.Decimal // precio de venta
	MinQty     decimal.Decimal // umbral de low-stock; 0 = sin umbral
	Barcode    string          // opcional
	CategoryID string          // opcional
	ImageURL   string          // opcional, URL pública del storage
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
