package dto

import "time"

// BatchResponse salida de un lote.
type BatchResponse struct {
	ID         string     `json:"id"`
	ProductID  string     `json:"product_id"`
	LotNo      string     `json:"lot_no"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
