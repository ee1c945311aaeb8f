package services

import (
	"context"
	"errors"
	"fmt"

	"shop-service/internal/domain"
	"shop-service/internal/infra"
	"shop-service/internal/logger"
	"shop-service/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Seeder wipes the catalog and loads a small fixed data set.
type Seeder struct {
	customers repository.CustomerRepository
	products  repository.ProductRepository
	orders    repository.OrderRepository
	cache     infra.ProductCache
	auth      *AuthService
}

// NewSeeder wires the seeder. cache may be nil when no product cache runs.
func NewSeeder(c repository.CustomerRepository, p repository.ProductRepository, o repository.OrderRepository, cache infra.ProductCache, auth *AuthService) *Seeder {
	if cache == nil {
		cache = infra.NoopProductCache{}
	}
	return &Seeder{customers: c, products: p, orders: o, cache: cache, auth: auth}
}

// AdminCredentials names the admin account the seeder makes sure exists.
type AdminCredentials struct {
	Username string
	Password string
}

func (s *Seeder) Run(ctx context.Context, admin AdminCredentials) error {
	if err := s.clear(ctx); err != nil {
		return err
	}

	products := []*domain.Product{
		{Name: "Product 1", Price: decimal.RequireFromString("19.99"), Available: domain.Bool(true)},
		{Name: "Product 2", Price: decimal.RequireFromString("29.99"), Available: domain.Bool(true)},
		{Name: "Product 3", Price: decimal.RequireFromString("39.99"), Available: domain.Bool(false)},
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		if err := s.products.Create(ctx, p); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}

	customers := []*domain.Customer{
		{Name: "Customer 1", Address: "123 Main St"},
		{Name: "Customer 2", Address: "456 Elm St"},
		{Name: "Customer 3", Address: "789 Oak St"},
	}
	for _, c := range customers {
		if err := s.customers.Create(ctx, c); err != nil {
			return fmt.Errorf("seed customer %q: %w", c.Name, err)
		}
	}

	orders := []*domain.Order{
		{CustomerID: customers[0].ID, Status: domain.StatusNew, Products: []domain.Product{*products[0], *products[1]}},
		{CustomerID: customers[1].ID, Status: domain.StatusInProcess, Products: []domain.Product{*products[1], *products[2]}},
		{CustomerID: customers[2].ID, Status: domain.StatusCompleted, Products: []domain.Product{*products[0], *products[2]}},
	}
	for _, o := range orders {
		if err := s.orders.Create(ctx, o); err != nil {
			return fmt.Errorf("seed order: %w", err)
		}
	}

	if admin.Username != "" {
		if err := s.ensureAdmin(ctx, admin); err != nil {
			return err
		}
	}

	logger.Info(ctx, "sample data created",
		zap.Int("products", len(products)),
		zap.Int("customers", len(customers)),
		zap.Int("orders", len(orders)),
	)
	return nil
}

func (s *Seeder) clear(ctx context.Context) error {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return err
	}
	for _, o := range orders {
		if err := s.orders.Delete(ctx, o.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
	}

	customers, err := s.customers.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range customers {
		if err := s.customers.Delete(ctx, c.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range products {
		if err := s.products.Delete(ctx, p.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.cache.InvalidateProduct(ctx, p.ID)
	}
	return nil
}

func (s *Seeder) ensureAdmin(ctx context.Context, admin AdminCredentials) error {
	if _, err := s.auth.users.FindByUsername(ctx, admin.Username); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if _, err := s.auth.Register(ctx, admin.Username, admin.Password, true); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
