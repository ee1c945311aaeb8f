package mysql

import (
	"errors"

	"shop-service/internal/domain"

	"gorm.io/gorm"
)

// notFound maps gorm's missing-record error onto the domain one.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
