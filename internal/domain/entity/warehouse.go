package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
type Warehouse struct {
	ID        string
	Code      string // código corto único (ej. "BOG-01")
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
