package repository

import (
	"context"

	"github.com/luminastore/catalog-service/internal/domain"
	"github.com/luminastore/catalog-service/internal/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, data dto.ProductUpdateRequest) (product domain.Product, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}
