package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/luminastore/catalog-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signCall struct {
	PublicID     string
	ResourceType string
}

type fakeSigner struct {
	mu    sync.Mutex
	calls []signCall
	err   error
}

func (f *fakeSigner) SignedReadURL(ctx context.Context, publicID string, resourceType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, signCall{PublicID: publicID, ResourceType: resourceType})
	if f.err != nil {
		return "", f.err
	}

	return fmt.Sprintf("https://signed.example.com/%s/%s", resourceType, publicID), nil
}

func TestResolveProduct_OpaqueIdentifier(t *testing.T) {
	signer := &fakeSigner{}
	resolver := CreateMediaResolver(signer)

	product := domain.Product{
		Name:   "Sneaker",
		Price:  49.9,
		Images: []string{"raw_id_1"},
	}

	resolved, err := resolver.ResolveProduct(context.Background(), product)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://signed.example.com/image/raw_id_1"}, resolved.Images)
	assert.Equal(t, []signCall{{PublicID: "raw_id_1", ResourceType: "image"}}, signer.calls)

	// Everything besides the media lists passes through untouched.
	assert.Equal(t, product.Name, resolved.Name)
	assert.Equal(t, product.Price, resolved.Price)
}

func TestResolveProduct_VideoUsesDeclaredKind(t *testing.T) {
	signer := &fakeSigner{}
	resolver := CreateMediaResolver(signer)

	product := domain.Product{
		Videos: []string{"clip_42"},
	}

	_, err := resolver.ResolveProduct(context.Background(), product)
	require.NoError(t, err)

	require.Len(t, signer.calls, 1)
	assert.Equal(t, "video", signer.calls[0].ResourceType)
}

func TestResolveProduct_EmptyEntryIsIdentity(t *testing.T) {
	signer := &fakeSigner{}
	resolver := CreateMediaResolver(signer)

	product := domain.Product{
		Images: []string{""},
	}

	resolved, err := resolver.ResolveProduct(context.Background(), product)
	require.NoError(t, err)

	assert.Equal(t, []string{""}, resolved.Images)
	assert.Empty(t, signer.calls)
}

func TestResolveProduct_DeliveryURLExtraction(t *testing.T) {
	signer := &fakeSigner{}
	resolver := CreateMediaResolver(signer)

	product := domain.Product{
		Images: []string{"https://res.cloudinary.com/demo/image/upload/v1690000000/products/shoe.png"},
	}

	resolved, err := resolver.ResolveProduct(context.Background(), product)
	require.NoError(t, err)

	assert.Equal(t, []signCall{{PublicID: "products/shoe", ResourceType: "image"}}, signer.calls)
	assert.Equal(t, "https://signed.example.com/image/products/shoe", resolved.Images[0])
}

func TestResolveProduct_DeliveryURLWithoutVersion(t *testing.T) {
	signer := &fakeSigner{}
	resolver := CreateMediaResolver(signer)

	product := domain.Product{
		Videos: []string{"https://res.cloudinary.com/demo/video/upload/trailers/launch.mp4?foo=bar"},
	}

	_, err := resolver.ResolveProduct(context.Background(), product)
	require.NoError(t, err)

	assert.Equal(t, []signCall{{PublicID: "trailers/launch", ResourceType: "video"}}, signer.calls)
}

func TestResolveProduct_KindSegmentOverridesDeclaredKind(t *testing.T) {
	signer := &fakeSigner{}
	resolver := CreateMediaResolver(signer)

	// A video URL stored in the images list keeps its own kind.
	product := domain.Product{
		Images: []string{"https://res.cloudinary.com/demo/video/upload/v1/clips/teaser.mp4"},
	}

	_, err := resolver.ResolveProduct(context.Background(), product)
	require.NoError(t, err)

	require.Len(t, signer.calls, 1)
	assert.Equal(t, "video", signer.calls[0].ResourceType)
}

func TestResolveProduct_ForeignURLPassesThrough(t *testing.T) {
	signer := &fakeSigner{}
	resolver := CreateMediaResolver(signer)

	foreign := "https://cdn.example.net/assets/banner.jpg"
	product := domain.Product{
		Images: []string{foreign},
	}

	resolved, err := resolver.ResolveProduct(context.Background(), product)
	require.NoError(t, err)
	assert.Equal(t, []string{foreign}, resolved.Images)
	assert.Empty(t, signer.calls)

	// Resolving twice yields the same value.
	again, err := resolver.ResolveProduct(context.Background(), resolved)
	require.NoError(t, err)
	assert.Equal(t, resolved.Images, again.Images)
}

func TestResolveProduct_MalformedDeliveryURLPassesThrough(t *testing.T) {
	signer := &fakeSigner{}
	resolver := CreateMediaResolver(signer)

	// Missing the kind segment, so the pattern never matches.
	malformed := "https://res.cloudinary.com/demo/upload/v1/products/shoe.png"
	product := domain.Product{
		Images: []string{malformed},
	}

	resolved, err := resolver.ResolveProduct(context.Background(), product)
	require.NoError(t, err)

	assert.Equal(t, []string{malformed}, resolved.Images)
	assert.Empty(t, signer.calls)
}

func TestResolveProduct_PreservesEntryOrder(t *testing.T) {
	signer := &fakeSigner{}
	resolver := CreateMediaResolver(signer)

	product := domain.Product{
		Images: []string{
			"id_a",
			"https://cdn.example.net/banner.jpg",
			"id_b",
			"",
		},
	}

	resolved, err := resolver.ResolveProduct(context.Background(), product)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://signed.example.com/image/id_a",
		"https://cdn.example.net/banner.jpg",
		"https://signed.example.com/image/id_b",
		"",
	}, resolved.Images)
}

func TestResolveProduct_NilListsBecomeEmptyArrays(t *testing.T) {
	signer := &fakeSigner{}
	resolver := CreateMediaResolver(signer)

	resolved, err := resolver.ResolveProduct(context.Background(), domain.Product{Name: "Sneaker"})
	require.NoError(t, err)

	assert.NotNil(t, resolved.Images)
	assert.NotNil(t, resolved.Videos)
	assert.Empty(t, resolved.Images)
	assert.Empty(t, resolved.Videos)
	assert.Empty(t, signer.calls)
}

func TestResolveProduct_SignerFailureFailsProduct(t *testing.T) {
	signerErr := errors.New("authority unavailable")
	signer := &fakeSigner{err: signerErr}
	resolver := CreateMediaResolver(signer)

	product := domain.Product{
		Images: []string{"id_a", "id_b"},
	}

	_, err := resolver.ResolveProduct(context.Background(), product)
	assert.ErrorIs(t, err, signerErr)
}

func TestResolveProducts_AllProductsResolved(t *testing.T) {
	signer := &fakeSigner{}
	resolver := CreateMediaResolver(signer)

	now := time.Now()
	products := []domain.Product{
		{Name: "first", Images: []string{"id_1"}, CreatedAt: now},
		{Name: "second", Videos: []string{"id_2"}},
	}

	resolved, err := resolver.ResolveProducts(context.Background(), products)
	require.NoError(t, err)
	require.Len(t, resolved, 2)

	assert.Equal(t, "first", resolved[0].Name)
	assert.Equal(t, []string{"https://signed.example.com/image/id_1"}, resolved[0].Images)
	assert.Equal(t, now, resolved[0].CreatedAt)
	assert.Equal(t, []string{"https://signed.example.com/video/id_2"}, resolved[1].Videos)
}

func TestResolveProducts_OneFailureFailsResponse(t *testing.T) {
	signerErr := errors.New("authority unavailable")
	signer := &fakeSigner{err: signerErr}
	resolver := CreateMediaResolver(signer)

	products := []domain.Product{
		{Images: []string{"https://cdn.example.net/ok.jpg"}},
		{Images: []string{"id_1"}},
	}

	_, err := resolver.ResolveProducts(context.Background(), products)
	assert.ErrorIs(t, err, signerErr)
}
