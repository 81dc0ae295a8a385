package entity

import "time"

// Batch representa un lote de un producto, opcionalmente con fecha de vencimiento.
// Se crea explícitamente o de forma implícita al registrar una entrada con lot_no nuevo.
type Batch struct {
	ID         string
	ProductID  string
	LotNo      string
	ExpiryDate *time.Time // nil = sin vencimiento
	CreatedAt  time.Time
}
