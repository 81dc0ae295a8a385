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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, sku, name, unit, price, min_qty, barcode, category_id, image_url, is_active, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, '')::uuid, NULLIF($9, ''), $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Unit, product.Price, product.MinQty,
		product.Barcode, product.CategoryID, product.ImageURL, product.IsActive,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productSelectColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetBySKU obtiene un producto por su SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productSelectColumns + ` FROM products WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku), "get product by sku")
}

const productSelectColumns = `id, sku, name, unit, price, min_qty, COALESCE(barcode, ''), COALESCE(category_id::text, ''), COALESCE(image_url, ''), is_active, created_at, updated_at`

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Unit, &p.Price, &p.MinQty,
		&p.Barcode, &p.CategoryID, &p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET sku = $2, name = $3, unit = $4, price = $5, min_qty = $6,
		    barcode = NULLIF($7, ''), category_id = NULLIF($8, '')::uuid, is_active = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Unit, product.Price, product.MinQty,
		product.Barcode, product.CategoryID, product.IsActive, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateImageURL actualiza solo la URL de la imagen (usado tras subir al storage).
func (r *ProductRepo) UpdateImageURL(productID, imageURL string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET image_url = $2, updated_at = now() WHERE id = $1`,
		productID, imageURL,
	)
	if err != nil {
		return fmt.Errorf("update product image: %w", err)
	}
	return nil
}

// List lista productos con paginación, opcionalmente solo activos.
func (r *ProductRepo) List(onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productSelectColumns + ` FROM products`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Unit, &p.Price, &p.MinQty,
			&p.Barcode, &p.CategoryID, &p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
