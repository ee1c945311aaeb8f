package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func product(id uint64, price string, available bool) Product {
	return Product{ID: id, Name: "p", Price: decimal.RequireFromString(price), Available: Bool(available)}
}

func TestOrder_Validate(t *testing.T) {
	tests := []struct {
		name         string
		order        Order
		expectedKind error
	}{
		{name: "valid without products", order: Order{CustomerID: 1, Status: StatusNew}},
		{name: "valid in process", order: Order{CustomerID: 1, Status: StatusInProcess}},
		{name: "missing customer", order: Order{Status: StatusNew}, expectedKind: ErrFieldRequired},
		{name: "missing status", order: Order{CustomerID: 1}, expectedKind: ErrFieldRequired},
		{name: "unknown status", order: Order{CustomerID: 1, Status: "Shipped"}, expectedKind: ErrInvalidValue},
		{name: "status is case sensitive", order: Order{CustomerID: 1, Status: "new"}, expectedKind: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.order.Validate()
			if tt.expectedKind == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expectedKind)
			}
		})
	}
}

func TestOrder_DerivedValues(t *testing.T) {
	tests := []struct {
		name        string
		products    []Product
		total       string
		fulfillable bool
	}{
		{name: "empty", total: "0.00", fulfillable: true},
		{name: "mixed availability", products: []Product{product(1, "19.99", true), product(2, "29.99", false)}, total: "49.98", fulfillable: false},
		{name: "all available", products: []Product{product(1, "19.99", true), product(2, "29.99", true)}, total: "49.98", fulfillable: true},
		{name: "no float drift", products: []Product{product(1, "0.10", true), product(2, "0.20", true)}, total: "0.30", fulfillable: true},
		{name: "large values", products: []Product{product(1, "99999999.99", true), product(2, "99999999.99", true)}, total: "199999999.98", fulfillable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Order{CustomerID: 1, Status: StatusNew, Products: tt.products}
			assert.Equal(t, tt.total, o.TotalPrice().StringFixed(2))
			assert.True(t, decimal.RequireFromString(tt.total).Equal(o.TotalPrice()))
			assert.Equal(t, tt.fulfillable, o.CanBeFulfilled())
		})
	}
}

func TestOrder_TotalPriceTracksProductSet(t *testing.T) {
	o := Order{CustomerID: 1, Status: StatusNew}
	assert.True(t, o.TotalPrice().IsZero())

	o.Products = append(o.Products, product(1, "19.99", true))
	assert.Equal(t, "19.99", o.TotalPrice().StringFixed(2))

	o.Products = append(o.Products, product(2, "29.99", false))
	assert.Equal(t, "49.98", o.TotalPrice().StringFixed(2))
	assert.False(t, o.CanBeFulfilled())
}

func TestDedupeProductIDs(t *testing.T) {
	assert.Equal(t, []uint64{3, 1, 2}, DedupeProductIDs([]uint64{3, 1, 3, 2, 1}))
	assert.Empty(t, DedupeProductIDs(nil))
}

func TestEntityEvent_RoutingKey(t *testing.T) {
	evt := NewEntityEvent("order", ActionCreated, 7)
	assert.Equal(t, "order.created", evt.RoutingKey())
	assert.Equal(t, uint64(7), evt.ID)
	assert.False(t, evt.OccurredAt.IsZero())
}
