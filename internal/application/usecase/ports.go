package usecase

import (
	"context"
	"io"

	"github.com/shopspring/decimal"
)

// ImageStorage puerto de almacenamiento de objetos para imágenes de producto
// (S3 o compatible). PublicURL arma la URL servible a partir de la key.
type ImageStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
	PublicURL(key string) string
}

// ProductTotalsProvider entrega el saldo total por producto, para decorar
// listados del catálogo con stock y el flag de low-stock.
type ProductTotalsProvider interface {
	ProductTotals(ctx context.Context) (map[string]decimal.Decimal, error)
}
