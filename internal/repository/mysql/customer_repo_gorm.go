package mysql

import (
	"context"

	"shop-service/internal/domain"
	"shop-service/internal/logger"
	"shop-service/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, c *domain.Customer) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		logger.Error(ctx, "customer create failed", err)
		return err
	}
	return nil
}

func (r *customerRepo) FindByID(ctx context.Context, id uint64) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *customerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	var out []domain.Customer
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		logger.Error(ctx, "customer list failed", err)
		return nil, err
	}
	return out, nil
}

func (r *customerRepo) Update(ctx context.Context, c *domain.Customer) error {
	res := r.db.WithContext(ctx).Model(&domain.Customer{}).
		Where("id = ?", c.ID).
		Select("name", "address").
		Updates(c)
	if res.Error != nil {
		logger.Error(ctx, "customer update failed", res.Error, zap.Uint64("customer_id", c.ID))
		return res.Error
	}
	if res.RowsAffected == 0 {
		// MySQL reports zero affected rows when nothing changed, so confirm the row exists.
		if _, err := r.FindByID(ctx, c.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the customer; the orders foreign key cascades to its orders.
func (r *customerRepo) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Customer{}, id)
	if res.Error != nil {
		logger.Error(ctx, "customer delete failed", res.Error, zap.Uint64("customer_id", id))
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
