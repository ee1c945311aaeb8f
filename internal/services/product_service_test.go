package services

import (
	"context"
	"errors"
	"testing"

	"shop-service/internal/domain"
	"shop-service/internal/infra"
	"shop-service/internal/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type countingCache struct {
	invalidated []uint64
}

func (c *countingCache) GetProduct(ctx context.Context, _ uint64, load func(ctx context.Context) (*domain.Product, error)) (*domain.Product, error) {
	return load(ctx)
}

func (c *countingCache) InvalidateProduct(_ context.Context, id uint64) {
	c.invalidated = append(c.invalidated, id)
}

var _ infra.ProductCache = (*countingCache)(nil)

func productInput(name, price string, available bool) ProductInput {
	d := decimal.RequireFromString(price)
	return ProductInput{Name: name, Price: &d, Available: domain.Bool(available)}
}

func TestProductService_Create(t *testing.T) {
	errDB := errors.New("database error")
	tests := []struct {
		name         string
		input        ProductInput
		setupMocks   func(*mocks.MockProductRepository, *mocks.MockPublisher)
		expectedKind error
	}{
		{
			name:    "valid product",
			input: productInput("Temporary product", "1.99", true),
			setupMocks: func(repo *mocks.MockProductRepository, pub *mocks.MockPublisher) {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.Product).ID = 7
				})
				pub.On("Publish", mock.Anything, "product.created", mock.Anything).Return(nil)
			},
		},
		{
			name:         "negative price",
			input:        productInput("Invalid product", "-1.99", true),
			setupMocks:   func(*mocks.MockProductRepository, *mocks.MockPublisher) {},
			expectedKind: domain.ErrInvalidValue,
		},
		{
			name:         "three decimal places",
			input:        productInput("Invalid price format", "1.999", true),
			setupMocks:   func(*mocks.MockProductRepository, *mocks.MockPublisher) {},
			expectedKind: domain.ErrInvalidFormat,
		},
		{
			name:         "missing price",
			input:        ProductInput{Name: "No price", Available: domain.Bool(true)},
			setupMocks:   func(*mocks.MockProductRepository, *mocks.MockPublisher) {},
			expectedKind: domain.ErrFieldRequired,
		},
		{
			name:    "repository error",
			input: productInput("Temporary product", "1.99", true),
			setupMocks: func(repo *mocks.MockProductRepository, pub *mocks.MockPublisher) {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(errDB)
			},
			expectedKind: errDB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockProductRepository)
			pub := new(mocks.MockPublisher)
			tt.setupMocks(repo, pub)

			service := NewProductService(repo, nil, pub)
			result, err := service.Create(context.Background(), tt.input)

			if tt.expectedKind != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedKind)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint64(7), result.ID)
			}

			repo.AssertExpectations(t)
			pub.AssertExpectations(t)
		})
	}
}

func TestProductService_Update(t *testing.T) {
	existing := CreateMockProduct(1, "Temporary product", "1.99", true)

	t.Run("replaces fields and invalidates cache", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		pub := new(mocks.MockPublisher)
		cache := &countingCache{}

		repo.On("FindByID", mock.Anything, uint64(1)).Return(existing, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
			return p.ID == 1 && p.Name == "Modified Product" && !p.IsAvailable()
		})).Return(nil)
		pub.On("Publish", mock.Anything, "product.updated", mock.Anything).Return(nil)

		service := NewProductService(repo, cache, pub)
		result, err := service.Update(context.Background(), 1, productInput("Modified Product", "2.50", false))

		require.NoError(t, err)
		assert.Equal(t, "Modified Product", result.Name)
		assert.Equal(t, []uint64{1}, cache.invalidated)
		repo.AssertExpectations(t)
		pub.AssertExpectations(t)
	})

	t.Run("missing product wins over invalid body", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("FindByID", mock.Anything, uint64(999)).Return(nil, domain.ErrNotFound)

		service := NewProductService(repo, nil, nil)
		_, err := service.Update(context.Background(), 999, ProductInput{Name: "x", Available: domain.Bool(true)})

		assert.ErrorIs(t, err, domain.ErrNotFound)
		repo.AssertExpectations(t)
	})

	t.Run("invalid body", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("FindByID", mock.Anything, uint64(1)).Return(existing, nil)

		service := NewProductService(repo, nil, nil)
		_, err := service.Update(context.Background(), 1, productInput("", "-1", true))

		assert.ErrorIs(t, err, domain.ErrFieldRequired)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing price on an existing product", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("FindByID", mock.Anything, uint64(1)).Return(existing, nil)

		service := NewProductService(repo, nil, nil)
		_, err := service.Update(context.Background(), 1, ProductInput{Name: "x", Available: domain.Bool(true)})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "price", verr.Field)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestProductService_Delete(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	cache := &countingCache{}
	repo.On("Delete", mock.Anything, uint64(3)).Return(nil)
	repo.On("Delete", mock.Anything, uint64(4)).Return(domain.ErrNotFound)

	service := NewProductService(repo, cache, nil)

	assert.NoError(t, service.Delete(context.Background(), 3))
	assert.ErrorIs(t, service.Delete(context.Background(), 4), domain.ErrNotFound)
	assert.Equal(t, []uint64{3}, cache.invalidated)
	repo.AssertExpectations(t)
}

func TestProductService_GetUsesCache(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("FindByID", mock.Anything, uint64(1)).Return(CreateMockProduct(1, "Temporary product", "1.99", true), nil)

	service := NewProductService(repo, &countingCache{}, nil)
	p, err := service.Get(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "1.99", p.Price.StringFixed(2))
	repo.AssertExpectations(t)
}
