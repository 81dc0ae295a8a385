package repository

import "github.com/jhoicas/Kardex-api/internal/domain/entity"

// BatchRepository define el puerto de persistencia para lotes.
type BatchRepository interface {
	Create(batch *entity.Batch) error
	GetByID(id string) (*entity.Batch, error)
	// ListByProduct devuelve los lotes de un producto ordenados por vencimiento ascendente.
	ListByProduct(productID string) ([]*entity.Batch, error)
}
