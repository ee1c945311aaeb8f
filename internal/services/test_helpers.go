package services

import (
	"time"

	"shop-service/internal/domain"

	"github.com/shopspring/decimal"
)

func CreateMockCustomer(id uint64, name, address string) *domain.Customer {
	return &domain.Customer{ID: id, Name: name, Address: address}
}

func CreateMockProduct(id uint64, name, price string, available bool) *domain.Product {
	return &domain.Product{
		ID:        id,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Available: domain.Bool(available),
	}
}

func CreateMockOrder(id, customerID uint64, status domain.OrderStatus, products ...domain.Product) *domain.Order {
	return &domain.Order{
		ID:         id,
		CustomerID: customerID,
		Status:     status,
		Products:   products,
		Date:       time.Now(),
	}
}

const (
	TestCustomerID = uint64(1)
	TestOrderID    = uint64(1)
	TestProductAID = uint64(1)
	TestProductBID = uint64(2)
)
