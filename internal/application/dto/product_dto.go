package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU        string          `json:"sku" validate:"required,min=1,max=100"`
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Unit       string          `json:"unit"`
	Price      decimal.Decimal `json:"price"`
	MinQty     decimal.Decimal `json:"min_qty"`
	Barcode    string          `json:"barcode"`
	CategoryID string          `json:"category_id"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	SKU        *string          `json:"sku" validate:"omitempty,min=1,max=100"`
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Unit       *string          `json:"unit"`
	Price      *decimal.Decimal `json:"price"`
	MinQty     *decimal.Decimal `json:"min_qty"`
	Barcode    *string          `json:"barcode"`
	CategoryID *string          `json:"category_id"`
	IsActive   *bool            `json:"is_active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         string          `json:"id"`
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	Price      decimal.Decimal `json:"price"`
	MinQty     decimal.Decimal `json:"min_qty"`
	Barcode    string          `json:"barcode,omitempty"`
	CategoryID string          `json:"category_id,omitempty"`
	ImageURL   string          `json:"image_url,omitempty"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductWithStockResponse producto + saldo actual y flag de low-stock.
type ProductWithStockResponse struct {
	ProductResponse
	StockQty decimal.Decimal `json:"stock_qty"`
	LowStock bool            `json:"low_stock"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductWithStockResponse `json:"items"`
	Page  PageResponse               `json:"page"`
}

// UploadImageResponse URL pública de la imagen subida.
type UploadImageResponse struct {
	ImageURL string `json:"image_url"`
}
