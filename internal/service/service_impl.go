package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/luminastore/catalog-service/config"
	"github.com/luminastore/catalog-service/internal/domain"
	"github.com/luminastore/catalog-service/internal/dto"
	"github.com/luminastore/catalog-service/internal/repository"
	"github.com/luminastore/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type ProductServiceImpl struct {
	repo          repository.ProductRepository
	resolver      *MediaResolver
	config        config.Config
	kafkaProducer *kafka.Conn
}

func CreateProductService(repo repository.ProductRepository, resolver *MediaResolver, config config.Config, kafkaProducer *kafka.Conn) ProductService {
	return &ProductServiceImpl{repo: repo, resolver: resolver, config: config, kafkaProducer: kafkaProducer}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	data, err = s.repo.GetProducts(ctx)
	if err != nil {
		return
	}

	return s.resolver.ResolveProducts(ctx, data)
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	product, err = s.repo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	return s.resolver.ResolveProduct(ctx, product)
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (product domain.Product, err error) {
	if data.Price < 0 {
		return product, errs.ErrClient
	}

	inStock := true
	if data.InStock != nil {
		inStock = *data.InStock
	}

	productID, err := s.repo.AddProduct(ctx, domain.Product{
		Name:           data.Name,
		Description:    data.Description,
		Price:          data.Price,
		OriginalPrice:  data.OriginalPrice,
		Images:         emptyIfNil(data.Images),
		Videos:         emptyIfNil(data.Videos),
		Category:       data.Category,
		Tags:           emptyIfNil(data.Tags),
		InStock:        inStock,
		Colors:         data.Colors,
		Sizes:          data.Sizes,
		Specifications: data.Specifications,
	})
	if err != nil {
		return
	}

	product, err = s.repo.GetProductByID(ctx, productID.Hex())
	if err != nil {
		return
	}

	err = s.publishEvent(ctx, "product_created", product)
	if err != nil {
		return
	}

	return product, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, data dto.ProductUpdateRequest) (product domain.Product, err error) {
	if data.Price != nil && *data.Price < 0 {
		return product, errs.ErrClient
	}

	product, err = s.repo.UpdateProduct(ctx, data)
	if err != nil {
		return
	}

	err = s.publishEvent(ctx, "product_updated", product)
	if err != nil {
		return
	}

	return product, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	err = s.repo.DeleteProduct(ctx, id)
	if err != nil {
		return
	}

	err = s.publishEvent(ctx, "product_deleted", map[string]string{"id": id})
	if err != nil {
		return
	}

	return
}

func (s *ProductServiceImpl) publishEvent(ctx context.Context, eventType string, data interface{}) error {
	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		return fmt.Errorf("failed to marshal Kafka message: %w", err)
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		err = s.writeKafkaMessage(jsonMsg)
		if err == nil {
			break
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		time.Sleep(time.Second * time.Duration(i+1)) // Exponential backoff
	}

	if err != nil {
		return fmt.Errorf("failed to write Kafka message after %d attempts: %w", maxRetries, err)
	}

	return nil
}

// Stored documents always carry arrays, never null lists.
func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func (s *ProductServiceImpl) writeKafkaMessage(msg []byte) error {
	_, err := s.kafkaProducer.WriteMessages(
		kafka.Message{
			Value: msg,
		},
	)
	return err
}
