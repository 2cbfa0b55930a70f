package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/luminastore/catalog-service/internal/domain"
	"golang.org/x/sync/errgroup"
)

const cloudinaryHost = "res.cloudinary.com"

// Matches /{kind}/upload/v123/{public id}.{ext}, version segment optional.
// The extension and any trailing query string are stripped from the ID.
var deliveryURLPattern = regexp.MustCompile(`(?i)/(image|video)/upload/(?:v\d+/)?(.+?)\.[a-z0-9]+(?:\?|$)`)

// MediaResolver rewrites stored media references into signed read URLs at
// read time. Storage always keeps the original reference, so the expiry
// policy can change without a data migration.
type MediaResolver struct {
	signer MediaSigner
}

func CreateMediaResolver(signer MediaSigner) *MediaResolver {
	return &MediaResolver{signer: signer}
}

// ResolveProduct signs all image and video references of one product. Every
// entry resolves concurrently; results keep their original positions. One
// failed entry fails the whole product.
func (r *MediaResolver) ResolveProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	g, ctx := errgroup.WithContext(ctx)

	images := make([]string, len(product.Images))
	for i, v := range product.Images {
		i, v := i, v
		g.Go(func() error {
			resolved, err := r.resolve(ctx, v, "image")
			images[i] = resolved
			return err
		})
	}

	videos := make([]string, len(product.Videos))
	for i, v := range product.Videos {
		i, v := i, v
		g.Go(func() error {
			resolved, err := r.resolve(ctx, v, "video")
			videos[i] = resolved
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Product{}, err
	}

	// Nil lists come back as empty ones so responses always carry arrays.
	product.Images = images
	product.Videos = videos

	return product, nil
}

func (r *MediaResolver) ResolveProducts(ctx context.Context, products []domain.Product) ([]domain.Product, error) {
	g, ctx := errgroup.WithContext(ctx)

	resolved := make([]domain.Product, len(products))
	for i, p := range products {
		i, p := i, p
		g.Go(func() error {
			result, err := r.ResolveProduct(ctx, p)
			resolved[i] = result
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return resolved, nil
}

// resolve classifies one reference. Bare values are opaque public IDs;
// Cloudinary delivery URLs are re-signed from their extracted public ID; any
// other URL is assumed already servable and passes through.
func (r *MediaResolver) resolve(ctx context.Context, value string, fallbackKind string) (string, error) {
	if value == "" {
		return value, nil
	}

	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return r.signer.SignedReadURL(ctx, value, fallbackKind)
	}

	if !strings.Contains(value, cloudinaryHost) {
		return value, nil
	}

	m := deliveryURLPattern.FindStringSubmatch(value)
	if m == nil {
		return value, nil
	}

	kind := strings.ToLower(m[1])
	if kind == "" {
		kind = fallbackKind
	}

	return r.signer.SignedReadURL(ctx, m[2], kind)
}
