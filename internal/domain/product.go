package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	ProductNameMaxLen = 255

	PriceDecimalPlaces = 2
	PriceMaxDigits     = 10
)

// maxPrice is the first value that no longer fits decimal(10,2).
var maxPrice = decimal.New(1, PriceMaxDigits-PriceDecimalPlaces)

type Product struct {
	ID        uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Available *bool           `json:"available" gorm:"not null;default:true"`
}

// IsAvailable treats an unset flag as unavailable.
func (p *Product) IsAvailable() bool {
	return p.Available != nil && *p.Available
}

func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return required("name")
	}
	if utf8.RuneCountInString(p.Name) > ProductNameMaxLen {
		return tooLong("name", ProductNameMaxLen)
	}
	if p.Available == nil {
		return required("available")
	}
	if !p.Price.IsPositive() {
		return invalidValue("price", "price must be positive")
	}
	if !p.Price.Equal(p.Price.Truncate(PriceDecimalPlaces)) {
		return invalidFormat("price", "ensure that there are no more than 2 decimal places")
	}
	if p.Price.GreaterThanOrEqual(maxPrice) {
		return invalidFormat("price", "ensure that there are no more than 10 digits in total")
	}
	return nil
}

// Bool is a helper for filling Product.Available.
func Bool(v bool) *bool {
	return &v
}
