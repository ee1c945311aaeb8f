package http

import (
	"time"

	"shop-service/internal/domain"
	"shop-service/internal/services"

	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name      string           `json:"name"`
	Price     *decimal.Decimal `json:"price"`
	Available *bool            `json:"available"`
}

func (r *ProductRequest) toInput() services.ProductInput {
	return services.ProductInput{Name: r.Name, Price: r.Price, Available: r.Available}
}

type ProductResponse struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Available bool   `json:"available"`
}

func newProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price.StringFixed(domain.PriceDecimalPlaces),
		Available: p.IsAvailable(),
	}
}

type CustomerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (r *CustomerRequest) toDomain() *domain.Customer {
	return &domain.Customer{Name: r.Name, Address: r.Address}
}

type CustomerResponse struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func newCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Name: c.Name, Address: c.Address}
}

type OrderRequest struct {
	Customer uint64   `json:"customer"`
	Status   string   `json:"status"`
	Products []uint64 `json:"products"`
}

func (r *OrderRequest) toInput() services.OrderInput {
	return services.OrderInput{
		CustomerID: r.Customer,
		Status:     domain.OrderStatus(r.Status),
		ProductIDs: r.Products,
	}
}

type AddProductsRequest struct {
	ProductIDs []uint64 `json:"product_ids" binding:"required"`
}

type OrderResponse struct {
	ID             uint64    `json:"id"`
	Customer       uint64    `json:"customer"`
	Products       []uint64  `json:"products"`
	Date           time.Time `json:"date"`
	Status         string    `json:"status"`
	TotalPrice     string    `json:"total_price"`
	CanBeFulfilled bool      `json:"can_be_fulfilled"`
}

func newOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		Customer:       o.CustomerID,
		Products:       o.ProductIDs(),
		Date:           o.Date,
		Status:         string(o.Status),
		TotalPrice:     o.TotalPrice().StringFixed(domain.PriceDecimalPlaces),
		CanBeFulfilled: o.CanBeFulfilled(),
	}
}

type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type AccessResponse struct {
	Access string `json:"access"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
