package services

import (
	"context"
	"testing"
	"time"

	"shop-service/internal/domain"
	"shop-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeeder_Run(t *testing.T) {
	customers := new(mocks.MockCustomerRepository)
	products := new(mocks.MockProductRepository)
	orders := new(mocks.MockOrderRepository)
	users := new(mocks.MockUserRepository)

	orders.On("List", mock.Anything).Return([]domain.Order{{ID: 9}}, nil)
	orders.On("Delete", mock.Anything, uint64(9)).Return(nil)
	customers.On("List", mock.Anything).Return([]domain.Customer{}, nil)
	products.On("List", mock.Anything).Return([]domain.Product{{ID: 4}}, nil)
	products.On("Delete", mock.Anything, uint64(4)).Return(nil)

	var nextID uint64
	products.On("Create", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil).Run(func(args mock.Arguments) {
		nextID++
		args.Get(1).(*domain.Product).ID = nextID
	})
	customers.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil).Run(func(args mock.Arguments) {
		nextID++
		args.Get(1).(*domain.Customer).ID = nextID
	})

	var created []*domain.Order
	orders.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
		created = append(created, args.Get(1).(*domain.Order))
	})

	users.On("FindByUsername", mock.Anything, "admin").Return(nil, domain.ErrNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool { return u.IsAdmin })).Return(nil)

	auth := NewAuthService(users, "test-secret", time.Minute, time.Hour)
	cache := &countingCache{}
	seeder := NewSeeder(customers, products, orders, cache, auth)

	err := seeder.Run(context.Background(), AdminCredentials{Username: "admin", Password: "adminpassword"})
	require.NoError(t, err)

	assert.Equal(t, []uint64{4}, cache.invalidated)
	require.Len(t, created, 3)
	assert.Equal(t, domain.StatusNew, created[0].Status)
	assert.Equal(t, "49.98", created[0].TotalPrice().StringFixed(2))
	assert.True(t, created[0].CanBeFulfilled())
	assert.Equal(t, domain.StatusInProcess, created[1].Status)
	assert.False(t, created[1].CanBeFulfilled())
	assert.Equal(t, domain.StatusCompleted, created[2].Status)
	assert.Equal(t, "59.98", created[2].TotalPrice().StringFixed(2))

	customers.AssertExpectations(t)
	products.AssertExpectations(t)
	orders.AssertExpectations(t)
	users.AssertExpectations(t)
}
