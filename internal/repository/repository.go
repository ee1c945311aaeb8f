package repository

import (
	"context"

	"shop-service/internal/domain"
)

// Lookups return domain.ErrNotFound when the record does not exist.

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	FindByID(ctx context.Context, id uint64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id uint64) error
}

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id uint64) (*domain.Product, error)
	FindByIDs(ctx context.Context, ids []uint64) ([]domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id uint64) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	FindByCustomer(ctx context.Context, customerID uint64) ([]domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	// Update replaces the scalar fields and the product set in one transaction.
	Update(ctx context.Context, o *domain.Order) error
	Delete(ctx context.Context, id uint64) error
	AddProducts(ctx context.Context, orderID uint64, productIDs []uint64) error
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id uint64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
