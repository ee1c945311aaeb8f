package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusNew       OrderStatus = "New"
	StatusInProcess OrderStatus = "In Process"
	StatusSent      OrderStatus = "Sent"
	StatusCompleted OrderStatus = "Completed"
)

var orderStatuses = map[OrderStatus]struct{}{
	StatusNew:       {},
	StatusInProcess: {},
	StatusSent:      {},
	StatusCompleted: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatuses[s]
	return ok
}

type Order struct {
	ID         uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID uint64      `json:"customer" gorm:"not null;index"`
	Customer   *Customer   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Products   []Product   `json:"products" gorm:"many2many:order_products;constraint:OnDelete:CASCADE;"`
	Date       time.Time   `json:"date" gorm:"autoCreateTime;<-:create"`
	Status     OrderStatus `json:"status" gorm:"size:50;not null"`
}

func (o *Order) Validate() error {
	if o.CustomerID == 0 {
		return required("customer")
	}
	if o.Status == "" {
		return required("status")
	}
	if !o.Status.Valid() {
		return invalidValue("status", `"`+string(o.Status)+`" is not a valid choice`)
	}
	return nil
}

// TotalPrice sums the prices of the products currently on the order.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.Products {
		total = total.Add(p.Price)
	}
	return total
}

// CanBeFulfilled reports whether every product on the order is available.
func (o *Order) CanBeFulfilled() bool {
	for i := range o.Products {
		if !o.Products[i].IsAvailable() {
			return false
		}
	}
	return true
}

// ProductIDs returns the ids of the products on the order.
func (o *Order) ProductIDs() []uint64 {
	ids := make([]uint64, 0, len(o.Products))
	for _, p := range o.Products {
		ids = append(ids, p.ID)
	}
	return ids
}

// DedupeProductIDs drops repeated ids, keeping first-seen order.
func DedupeProductIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
