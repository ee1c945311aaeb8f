package infra

import (
	"context"

	"shop-service/internal/domain"
)

// ProductCache holds product records keyed by id.
type ProductCache interface {
	GetProduct(ctx context.Context, id uint64, load func(ctx context.Context) (*domain.Product, error)) (*domain.Product, error)
	InvalidateProduct(ctx context.Context, id uint64)
}

// NoopProductCache always loads from the source.
type NoopProductCache struct{}

func (NoopProductCache) GetProduct(ctx context.Context, _ uint64, load func(ctx context.Context) (*domain.Product, error)) (*domain.Product, error) {
	return load(ctx)
}

func (NoopProductCache) InvalidateProduct(context.Context, uint64) {}

var _ ProductCache = NoopProductCache{}
