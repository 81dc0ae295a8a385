package usecase_test

import (
	"bytes"
	"context"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/application/usecase"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) UpdateImageURL(id, url string) error {
	if p, ok := r.products[id]; ok {
		p.ImageURL = url
	}
	return nil
}
func (r *memProductRepo) List(onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	list := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if onlyActive && !p.IsActive {
			continue
		}
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SKU < list[j].SKU })
	return list, nil
}
func (r *memProductRepo) Delete(id string) error { delete(r.products, id); return nil }

type stubTotals struct {
	totals map[string]decimal.Decimal
}

func (s *stubTotals) ProductTotals(context.Context) (map[string]decimal.Decimal, error) {
	if s.totals == nil {
		return map[string]decimal.Decimal{}, nil
	}
	return s.totals, nil
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo, &stubTotals{}, nil)

	_, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-1", Name: "Arroz 5kg"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{SKU: "SKU-1", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_Invalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo(), &stubTotals{}, nil)
	_, err := uc.Create(dto.CreateProductRequest{SKU: "", Name: "Sin SKU"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{SKU: "S", Name: "N", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_CambioDeSKURevalida(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo, &stubTotals{}, nil)
	a, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-A", Name: "A"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProductRequest{SKU: "SKU-B", Name: "B"})
	require.NoError(t, err)

	skuB := "SKU-B"
	_, err = uc.Update(a.ID, dto.UpdateProductRequest{SKU: &skuB})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// El listado decora cada producto con su saldo total y el flag de low-stock:
// min_qty > 0 y saldo < min_qty.
func TestProductList_ConStockYLowStock(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo, &stubTotals{}, nil)
	low, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-1", Name: "Bajo", MinQty: decimal.NewFromInt(10)})
	require.NoError(t, err)
	ok, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-2", Name: "Suficiente", MinQty: decimal.NewFromInt(10)})
	require.NoError(t, err)
	noMin, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-3", Name: "Sin umbral"})
	require.NoError(t, err)

	totals := &stubTotals{totals: map[string]decimal.Decimal{
		low.ID: decimal.NewFromInt(3),
		ok.ID:  decimal.NewFromInt(25),
		// noMin ausente: saldo cero
	}}
	ucList := usecase.NewProductUseCase(repo, totals, nil)

	resp, err := ucList.List(context.Background(), false, 20, 0)
	require.NoError(t, err)
	require.Len(t, resp.Items, 3)

	byID := make(map[string]dto.ProductWithStockResponse)
	for _, item := range resp.Items {
		byID[item.ID] = item
	}
	assert.True(t, byID[low.ID].LowStock, "3 < 10 con umbral")
	assert.False(t, byID[ok.ID].LowStock, "25 >= 10")
	assert.False(t, byID[noMin.ID].LowStock, "min_qty 0 = sin umbral, nunca low-stock")
	assert.True(t, byID[noMin.ID].StockQty.IsZero())
}

func TestProductUploadImage_SinStorage(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo, &stubTotals{}, nil)
	p, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-1", Name: "Con foto"})
	require.NoError(t, err)

	_, err = uc.UploadImage(context.Background(), p.ID, "foto.png", "image/png", bytes.NewReader(nil))
	assert.ErrorIs(t, err, domain.ErrDependency)
}
