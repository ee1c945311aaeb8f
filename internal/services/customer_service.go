package services

import (
	"context"

	"shop-service/internal/domain"
	"shop-service/internal/infra/rabbitmq"
	"shop-service/internal/repository"
)

const entityCustomer = "customer"

type CustomerService struct {
	repo      repository.CustomerRepository
	publisher rabbitmq.PublisherInterface
}

func NewCustomerService(r repository.CustomerRepository, pub rabbitmq.PublisherInterface) *CustomerService {
	return &CustomerService{repo: r, publisher: orNoop(pub)}
}

func (s *CustomerService) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	c.ID = 0
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.publisher, entityCustomer, domain.ActionCreated, c.ID)
	return c, nil
}

func (s *CustomerService) Get(ctx context.Context, id uint64) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CustomerService) Exists(ctx context.Context, id uint64) error {
	_, err := s.repo.FindByID(ctx, id)
	return err
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

// Update replaces every field of an existing customer.
func (s *CustomerService) Update(ctx context.Context, id uint64, c *domain.Customer) (*domain.Customer, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	c.ID = id
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.publisher, entityCustomer, domain.ActionUpdated, id)
	return c, nil
}

// Delete removes the customer together with its orders.
func (s *CustomerService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	publishEvent(ctx, s.publisher, entityCustomer, domain.ActionDeleted, id)
	return nil
}
