package services

import (
	"context"
	"strings"
	"testing"

	"shop-service/internal/domain"
	"shop-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_Create(t *testing.T) {
	tests := []struct {
		name         string
		customer     *domain.Customer
		expectedKind error
	}{
		{name: "valid", customer: &domain.Customer{Name: "John Doe", Address: "123 Main St"}},
		{name: "name at limit", customer: &domain.Customer{Name: strings.Repeat("a", 100), Address: "123 Main St"}},
		{name: "name too long", customer: &domain.Customer{Name: strings.Repeat("a", 101), Address: "123 Main St"}, expectedKind: domain.ErrFieldTooLong},
		{name: "missing address", customer: &domain.Customer{Name: "John Doe"}, expectedKind: domain.ErrFieldRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockCustomerRepository)
			pub := new(mocks.MockPublisher)
			if tt.expectedKind == nil {
				repo.On("Create", mock.Anything, tt.customer).Return(nil)
				pub.On("Publish", mock.Anything, "customer.created", mock.Anything).Return(nil)
			}

			service := NewCustomerService(repo, pub)
			result, err := service.Create(context.Background(), tt.customer)

			if tt.expectedKind != nil {
				assert.ErrorIs(t, err, tt.expectedKind)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.customer.Name, result.Name)
			}
			repo.AssertExpectations(t)
			pub.AssertExpectations(t)
		})
	}
}

func TestCustomerService_Update(t *testing.T) {
	repo := new(mocks.MockCustomerRepository)
	repo.On("FindByID", mock.Anything, uint64(1)).Return(CreateMockCustomer(1, "John Doe", "123 Main St"), nil)
	repo.On("FindByID", mock.Anything, uint64(2)).Return(nil, domain.ErrNotFound)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Customer) bool {
		return c.ID == 1 && c.Address == "456 Elm St"
	})).Return(nil)

	service := NewCustomerService(repo, nil)

	updated, err := service.Update(context.Background(), 1, &domain.Customer{Name: "John Doe", Address: "456 Elm St"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), updated.ID)

	_, err = service.Update(context.Background(), 2, &domain.Customer{Name: "John Doe", Address: "456 Elm St"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	repo.AssertExpectations(t)
}

func TestCustomerService_Delete(t *testing.T) {
	repo := new(mocks.MockCustomerRepository)
	repo.On("Delete", mock.Anything, uint64(1)).Return(nil)
	repo.On("Delete", mock.Anything, uint64(2)).Return(domain.ErrNotFound)

	service := NewCustomerService(repo, nil)

	assert.NoError(t, service.Delete(context.Background(), 1))
	assert.ErrorIs(t, service.Delete(context.Background(), 2), domain.ErrNotFound)
	repo.AssertExpectations(t)
}
