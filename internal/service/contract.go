package service

import (
	"context"
	"io"
	"net/url"

	"github.com/luminastore/catalog-service/internal/domain"
	"github.com/luminastore/catalog-service/internal/dto"
)

type ProductService interface {
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	AddProduct(ctx context.Context, data dto.ProductRequest) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, data dto.ProductUpdateRequest) (product domain.Product, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

type AuthService interface {
	Login(ctx context.Context, payload dto.LoginRequest) (resp dto.LoginResponse, err error)
	EnvCheck() dto.EnvCheckResponse
}

type MediaService interface {
	Upload(ctx context.Context, file io.Reader, folder string) (resp dto.UploadResponse, err error)
	SignURL(ctx context.Context, publicID string, resourceType string) (resp dto.SignURLResponse, err error)
	SignUpload(ctx context.Context, req dto.UploadSignatureRequest) (resp dto.UploadSignatureResponse, err error)
}

// MediaSigner issues time-limited read URLs for stored assets.
type MediaSigner interface {
	SignedReadURL(ctx context.Context, publicID string, resourceType string) (string, error)
}

// MediaGateway is the full surface of the external media authority.
type MediaGateway interface {
	MediaSigner
	Upload(ctx context.Context, file io.Reader, folder string) (resp dto.UploadResponse, err error)
	SignDeliveryURL(publicID string, resourceType string) (string, error)
	SignUploadParams(params url.Values) (string, error)
	CloudName() string
	APIKey() string
}
