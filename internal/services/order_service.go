package services

import (
	"context"
	"errors"

	"shop-service/internal/domain"
	"shop-service/internal/infra/rabbitmq"
	"shop-service/internal/repository"

	"github.com/shopspring/decimal"
)

const entityOrder = "order"

// OrderInput carries the writable fields of an order.
type OrderInput struct {
	CustomerID uint64
	Status     domain.OrderStatus
	ProductIDs []uint64
}

// OrderSummary holds the values derived from an order's current product set.
type OrderSummary struct {
	TotalPrice     decimal.Decimal
	CanBeFulfilled bool
}

type OrderService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	publisher rabbitmq.PublisherInterface
}

func NewOrderService(o repository.OrderRepository, c repository.CustomerRepository, p repository.ProductRepository, pub rabbitmq.PublisherInterface) *OrderService {
	return &OrderService{
		orders:    o,
		customers: c,
		products:  p,
		publisher: orNoop(pub),
	}
}

func (s *OrderService) Create(ctx context.Context, in OrderInput) (*domain.Order, error) {
	order := &domain.Order{CustomerID: in.CustomerID, Status: in.Status}
	if err := s.prepare(ctx, order, in.ProductIDs); err != nil {
		return nil, err
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.publisher, entityOrder, domain.ActionCreated, order.ID)

	return s.orders.FindByID(ctx, order.ID)
}

func (s *OrderService) Get(ctx context.Context, id uint64) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *OrderService) Exists(ctx context.Context, id uint64) error {
	_, err := s.orders.FindByID(ctx, id)
	return err
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) ListByCustomer(ctx context.Context, customerID uint64) ([]domain.Order, error) {
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.orders.FindByCustomer(ctx, customerID)
}

// Update replaces customer, status and the whole product set. The order date is kept.
func (s *OrderService) Update(ctx context.Context, id uint64, in OrderInput) (*domain.Order, error) {
	existing, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{ID: id, CustomerID: in.CustomerID, Status: in.Status, Date: existing.Date}
	if err := s.prepare(ctx, order, in.ProductIDs); err != nil {
		return nil, err
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.publisher, entityOrder, domain.ActionUpdated, id)

	return s.orders.FindByID(ctx, id)
}

// AddProducts adds products to the order's set. Products already on it are ignored.
func (s *OrderService) AddProducts(ctx context.Context, id uint64, productIDs []uint64) (*domain.Order, error) {
	if _, err := s.orders.FindByID(ctx, id); err != nil {
		return nil, err
	}

	products, err := s.resolveProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	if len(products) > 0 {
		ids := make([]uint64, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		if err := s.orders.AddProducts(ctx, id, ids); err != nil {
			return nil, err
		}
		publishEvent(ctx, s.publisher, entityOrder, domain.ActionProductsAdded, id)
	}

	return s.orders.FindByID(ctx, id)
}

func (s *OrderService) Delete(ctx context.Context, id uint64) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	publishEvent(ctx, s.publisher, entityOrder, domain.ActionDeleted, id)
	return nil
}

// Summary recomputes the derived values from the order as it is stored now.
func (s *OrderService) Summary(ctx context.Context, id uint64) (*OrderSummary, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &OrderSummary{TotalPrice: o.TotalPrice(), CanBeFulfilled: o.CanBeFulfilled()}, nil
}

// prepare validates the order fields first, then checks its references.
func (s *OrderService) prepare(ctx context.Context, order *domain.Order, productIDs []uint64) error {
	if err := order.Validate(); err != nil {
		return err
	}

	if _, err := s.customers.FindByID(ctx, order.CustomerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.InvalidReference("customer", order.CustomerID)
		}
		return err
	}

	products, err := s.resolveProducts(ctx, productIDs)
	if err != nil {
		return err
	}
	order.Products = products
	return nil
}

// resolveProducts loads the products for a set of ids, in the order given.
func (s *OrderService) resolveProducts(ctx context.Context, ids []uint64) ([]domain.Product, error) {
	ids = domain.DedupeProductIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]domain.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, domain.InvalidReference("products", id)
		}
		out = append(out, p)
	}
	return out, nil
}
