package usecase

import (
	"fmt"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// BatchUseCase consultas de lotes. Los lotes se crean al registrar un
// movimiento con lot_no nuevo, no por un endpoint propio.
type BatchUseCase struct {
	repo        repository.BatchRepository
	productRepo repository.ProductRepository
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(repo repository.BatchRepository, productRepo repository.ProductRepository) *BatchUseCase {
	return &BatchUseCase{repo: repo, productRepo: productRepo}
}

// GetByID obtiene un lote por ID.
func (uc *BatchUseCase) GetByID(id string) (*dto.BatchResponse, error) {
	batch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, nil
	}
	return toBatchResponse(batch), nil
}

// ListByProduct lista los lotes de un producto, primero los más próximos a vencer.
func (uc *BatchUseCase) ListByProduct(productID string) ([]dto.BatchResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrDependency, productID)
	}
	list, err := uc.repo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BatchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBatchResponse(b))
	}
	return items, nil
}

func toBatchResponse(b *entity.Batch) *dto.BatchResponse {
	if b == nil {
		return nil
	}
	return &dto.BatchResponse{
		ID:         b.ID,
		ProductID:  b.ProductID,
		LotNo:      b.LotNo,
		ExpiryDate: b.ExpiryDate,
		CreatedAt:  b.CreatedAt,
	}
}
