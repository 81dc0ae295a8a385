package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación del puerto BatchRepository sobre PostgreSQL
// (usable con pool o tx; el registro de movimientos lo usa dentro de la tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador de persistencia para lotes.
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste un nuevo lote. (product_id, lot_no) es único.
func (r *BatchRepo) Create(batch *entity.Batch) error {
	query := `
		INSERT INTO batches (id, product_id, lot_no, expiry_date, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.ProductID, batch.LotNo, batch.ExpiryDate, batch.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *BatchRepo) GetByID(id string) (*entity.Batch, error) {
	query := `SELECT id, product_id, lot_no, expiry_date, created_at FROM batches WHERE id = $1`
	var b entity.Batch
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.ProductID, &b.LotNo, &b.ExpiryDate, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &b, nil
}

// ListByProduct lista los lotes de un producto, primero los más próximos a
// vencer; los sin vencimiento van al final.
func (r *BatchRepo) ListByProduct(productID string) ([]*entity.Batch, error) {
	query := `
		SELECT id, product_id, lot_no, expiry_date, created_at
		FROM batches WHERE product_id = $1
		ORDER BY expiry_date ASC NULLS LAST, created_at ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Batch
	for rows.Next() {
		var b entity.Batch
		if err := rows.Scan(&b.ID, &b.ProductID, &b.LotNo, &b.ExpiryDate, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
