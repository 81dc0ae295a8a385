// Package storage implementa el almacenamiento de imágenes de producto sobre
// cualquier backend S3-compatible (AWS S3, MinIO, Supabase Storage).
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jhoicas/Kardex-api/internal/application/usecase"
	"github.com/jhoicas/Kardex-api/pkg/config"
)

var _ usecase.ImageStorage = (*S3ImageStorage)(nil)

// S3ImageStorage implementa usecase.ImageStorage con el SDK v2 de AWS.
type S3ImageStorage struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3ImageStorage construye el storage desde la configuración. Bucket,
// AccessKey y SecretKey son obligatorios; Endpoint vacío apunta a AWS.
func NewS3ImageStorage(cfg config.StorageConfig) (*S3ImageStorage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage: bucket requerido")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("storage: credenciales requeridas")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: configurar SDK: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			// Endpoints no-AWS (MinIO, Supabase) requieren path-style
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicBase := cfg.PublicBaseURL
	if publicBase == "" {
		if cfg.Endpoint != "" {
			publicBase = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
		} else {
			publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
		}
	}

	return &S3ImageStorage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimSuffix(publicBase, "/"),
	}, nil
}

// Upload sube el objeto bajo la key dada, reemplazando si ya existe.
func (s *S3ImageStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	if key == "" {
		return errors.New("storage: key requerida")
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("storage: subir objeto: %w", err)
	}
	return nil
}

// PublicURL arma la URL servible del objeto. Asume bucket de lectura pública
// (las imágenes de producto se sirven directo al cliente).
func (s *S3ImageStorage) PublicURL(key string) string {
	return s.publicBaseURL + "/" + strings.TrimPrefix(key, "/")
}
