package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	domaininv "github.com/jhoicas/Kardex-api/internal/domain/inventory"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock no se edita aquí:
// se deriva del ledger de movimientos.
type ProductUseCase struct {
	repo    repository.ProductRepository
	totals  ProductTotalsProvider
	storage ImageStorage // opcional, puede ser nil
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, totals ProductTotalsProvider, storage ImageStorage) *ProductUseCase {
	return &ProductUseCase{repo: repo, totals: totals, storage: storage}
}

// Create crea un nuevo producto. El SKU debe ser único.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || in.MinQty.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		SKU:        in.SKU,
		Name:       in.Name,
		Unit:       in.Unit,
		Price:      in.Price,
		MinQty:     in.MinQty,
		Barcode:    in.Barcode,
		CategoryID: in.CategoryID,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos presentes. Cambiar el SKU revalida unicidad.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.SKU != nil && *in.SKU != product.SKU {
		if *in.SKU == "" {
			return nil, domain.ErrInvalidInput
		}
		existing, err := uc.repo.GetBySKU(*in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		product.SKU = *in.SKU
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.MinQty != nil {
		if in.MinQty.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.MinQty = *in.MinQty
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con su stock actual y el flag de low-stock. El total
// por producto sale de la vista agregada; si la vista no existe todavía, los
// saldos llegan en cero y el flag queda apagado.
func (uc *ProductUseCase) List(ctx context.Context, onlyActive bool, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	totals, err := uc.totals.ProductTotals(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductWithStockResponse, 0, len(list))
	for _, p := range list {
		qty := totals[p.ID] // ausente = cero
		items = append(items, dto.ProductWithStockResponse{
			ProductResponse: *toProductResponse(p),
			StockQty:        qty,
			LowStock:        domaininv.IsLowStock(qty, p.MinQty),
		})
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// UploadImage sube la imagen al storage y guarda la URL pública en el
// producto. La key incluye el ID para que re-subir reemplace la anterior.
func (uc *ProductUseCase) UploadImage(ctx context.Context, id, filename, contentType string, body io.Reader) (*dto.UploadImageResponse, error) {
	if uc.storage == nil {
		return nil, fmt.Errorf("%w: storage de imágenes no configurado", domain.ErrDependency)
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	key := "products/" + id + path.Ext(filename)
	if err := uc.storage.Upload(ctx, key, contentType, body); err != nil {
		return nil, fmt.Errorf("subir imagen: %w", err)
	}
	url := uc.storage.PublicURL(key)
	if err := uc.repo.UpdateImageURL(id, url); err != nil {
		return nil, err
	}
	return &dto.UploadImageResponse{ImageURL: url}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		SKU:        p.SKU,
		Name:       p.Name,
		Unit:       p.Unit,
		Price:      p.Price,
		MinQty:     p.MinQty,
		Barcode:    p.Barcode,
		CategoryID: p.CategoryID,
		ImageURL:   p.ImageURL,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
