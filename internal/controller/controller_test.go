package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/luminastore/catalog-service/internal/domain"
	"github.com/luminastore/catalog-service/internal/dto"
	"github.com/luminastore/catalog-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductService struct {
	products map[string]domain.Product
}

func (s *stubProductService) GetProducts(ctx context.Context) ([]domain.Product, error) {
	data := []domain.Product{}
	for _, p := range s.products {
		data = append(data, p)
	}
	return data, nil
}

func (s *stubProductService) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return domain.Product{}, errs.ErrNotFound
	}
	return product, nil
}

func (s *stubProductService) AddProduct(ctx context.Context, data dto.ProductRequest) (domain.Product, error) {
	return domain.Product{Name: data.Name}, nil
}

func (s *stubProductService) UpdateProduct(ctx context.Context, data dto.ProductUpdateRequest) (domain.Product, error) {
	if _, ok := s.products[data.ID]; !ok {
		return domain.Product{}, errs.ErrNotFound
	}
	return s.products[data.ID], nil
}

func (s *stubProductService) DeleteProduct(ctx context.Context, id string) error {
	if _, ok := s.products[id]; !ok {
		return errs.ErrNotFound
	}
	return nil
}

func TestGetProductByID_NotFound(t *testing.T) {
	e := echo.New()
	c := Controller{service: &stubProductService{products: map[string]domain.Product{}}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("deadbeefdeadbeefdeadbeef")

	err := c.GetProductByID(ctx)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
}

func TestGetProductByID_Found(t *testing.T) {
	e := echo.New()
	c := Controller{service: &stubProductService{products: map[string]domain.Product{
		"abc": {Name: "Sneaker"},
	}}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("abc")

	err := c.GetProductByID(ctx)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
}

func TestUpdateProduct_NotFound(t *testing.T) {
	e := echo.New()
	c := Controller{service: &stubProductService{products: map[string]domain.Product{}}}

	req := httptest.NewRequest(http.MethodPut, "/", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("missing")

	err := c.UpdateProduct(ctx)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	e := echo.New()
	c := Controller{service: &stubProductService{products: map[string]domain.Product{}}}

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("missing")

	err := c.DeleteProduct(ctx)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
