package repository

import (
	"context"
	"time"

	"github.com/luminastore/catalog-service/internal/domain"
	"github.com/luminastore/catalog-service/internal/dto"
	"github.com/luminastore/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	now := time.Now()
	data.CreatedAt = now
	data.UpdatedAt = now

	result, err := r.db.Collection("products").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("products").Find(ctx, bson.D{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if data == nil {
		data = []domain.Product{}
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	err = r.db.Collection("products").FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")

		return product, err
	}
	return product, nil
}

func (r *MongoDBProductRepositoryImpl) UpdateProduct(ctx context.Context, data dto.ProductUpdateRequest) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(data.ID)
	if err != nil {
		return product, errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}}
	update := bson.D{{Key: "$set", Value: BuildUpdateDocument(data, time.Now())}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.db.Collection("products").FindOneAndUpdate(ctx, filter, update, opts).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("Failed to update product")

		return product, err
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	result, err := r.db.Collection("products").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return
}

// BuildUpdateDocument turns the fields present in the payload into a $set
// document. Absent fields never touch the stored record.
func BuildUpdateDocument(data dto.ProductUpdateRequest, now time.Time) bson.D {
	set := bson.D{}

	if data.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *data.Name})
	}
	if data.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *data.Description})
	}
	if data.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *data.Price})
	}
	if data.OriginalPrice != nil {
		set = append(set, bson.E{Key: "original_price", Value: *data.OriginalPrice})
	}
	if data.Images != nil {
		set = append(set, bson.E{Key: "images", Value: *data.Images})
	}
	if data.Videos != nil {
		set = append(set, bson.E{Key: "videos", Value: *data.Videos})
	}
	if data.Category != nil {
		set = append(set, bson.E{Key: "category", Value: *data.Category})
	}
	if data.Tags != nil {
		set = append(set, bson.E{Key: "tags", Value: *data.Tags})
	}
	if data.InStock != nil {
		set = append(set, bson.E{Key: "in_stock", Value: *data.InStock})
	}
	if data.Colors != nil {
		set = append(set, bson.E{Key: "colors", Value: *data.Colors})
	}
	if data.Sizes != nil {
		set = append(set, bson.E{Key: "sizes", Value: *data.Sizes})
	}
	if data.Specifications != nil {
		set = append(set, bson.E{Key: "specifications", Value: *data.Specifications})
	}
	if data.Rating != nil {
		set = append(set, bson.E{Key: "rating", Value: *data.Rating})
	}
	if data.ReviewCount != nil {
		set = append(set, bson.E{Key: "review_count", Value: *data.ReviewCount})
	}

	set = append(set, bson.E{Key: "updated_at", Value: now})

	return set
}
