package services

import (
	"context"

	"shop-service/internal/domain"
	"shop-service/internal/infra"
	"shop-service/internal/infra/rabbitmq"
	"shop-service/internal/repository"

	"github.com/shopspring/decimal"
)

const entityProduct = "product"

// ProductInput carries the writable fields of a product. Price is a pointer
// because a zero decimal cannot tell an absent price from 0.
type ProductInput struct {
	Name      string
	Price     *decimal.Decimal
	Available *bool
}

func (in ProductInput) product(id uint64) (*domain.Product, error) {
	if in.Price == nil {
		return nil, domain.MissingField("price")
	}
	p := &domain.Product{ID: id, Name: in.Name, Price: *in.Price, Available: in.Available}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

type ProductService struct {
	repo      repository.ProductRepository
	cache     infra.ProductCache
	publisher rabbitmq.PublisherInterface
}

func NewProductService(r repository.ProductRepository, cache infra.ProductCache, pub rabbitmq.PublisherInterface) *ProductService {
	if cache == nil {
		cache = infra.NoopProductCache{}
	}
	return &ProductService{repo: r, cache: cache, publisher: orNoop(pub)}
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*domain.Product, error) {
	p, err := in.product(0)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.publisher, entityProduct, domain.ActionCreated, p.ID)
	return p, nil
}

func (s *ProductService) Get(ctx context.Context, id uint64) (*domain.Product, error) {
	return s.cache.GetProduct(ctx, id, func(ctx context.Context) (*domain.Product, error) {
		return s.repo.FindByID(ctx, id)
	})
}

// Exists reads the database directly; a cached copy may outlive a delete.
func (s *ProductService) Exists(ctx context.Context, id uint64) error {
	_, err := s.repo.FindByID(ctx, id)
	return err
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

// Update replaces every field of an existing product.
func (s *ProductService) Update(ctx context.Context, id uint64, in ProductInput) (*domain.Product, error) {
	if err := s.Exists(ctx, id); err != nil {
		return nil, err
	}
	p, err := in.product(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.cache.InvalidateProduct(ctx, id)
	publishEvent(ctx, s.publisher, entityProduct, domain.ActionUpdated, id)
	return p, nil
}

// Delete removes the product. Orders that referenced it keep existing without it.
func (s *ProductService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateProduct(ctx, id)
	publishEvent(ctx, s.publisher, entityProduct, domain.ActionDeleted, id)
	return nil
}
