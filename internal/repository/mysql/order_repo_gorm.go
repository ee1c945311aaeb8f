package mysql

import (
	"context"
	"errors"

	"shop-service/internal/domain"
	"shop-service/internal/logger"
	"shop-service/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderProduct is a row of the order/product join table.
type orderProduct struct {
	OrderID   uint64 `gorm:"primaryKey"`
	ProductID uint64 `gorm:"primaryKey"`
}

func (orderProduct) TableName() string {
	return "order_products"
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, o *domain.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(o).Error; err != nil {
			return err
		}
		return linkProducts(tx, o.ID, o.ProductIDs())
	})
	if err != nil {
		logger.Error(ctx, "order create failed", err)
		return err
	}
	logger.Debug(ctx, "order saved", zap.Uint64("order_id", o.ID))
	return nil
}

func (r *orderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.withProducts(ctx).First(&o, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

func (r *orderRepo) FindByCustomer(ctx context.Context, customerID uint64) ([]domain.Order, error) {
	var out []domain.Order
	if err := r.withProducts(ctx).Where("customer_id = ?", customerID).Order("id ASC").Find(&out).Error; err != nil {
		logger.Error(ctx, "order lookup by customer failed", err, zap.Uint64("customer_id", customerID))
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) List(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := r.withProducts(ctx).Order("id ASC").Find(&out).Error; err != nil {
		logger.Error(ctx, "order list failed", err)
		return nil, err
	}
	return out, nil
}

// Update writes customer and status and swaps the product set. Date is never touched.
func (r *orderRepo) Update(ctx context.Context, o *domain.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, o.ID); err != nil {
			return err
		}
		err := tx.Model(&domain.Order{}).
			Where("id = ?", o.ID).
			Updates(map[string]interface{}{"customer_id": o.CustomerID, "status": o.Status}).Error
		if err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", o.ID).Delete(&orderProduct{}).Error; err != nil {
			return err
		}
		return linkProducts(tx, o.ID, o.ProductIDs())
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Error(ctx, "order update failed", err, zap.Uint64("order_id", o.ID))
	}
	return err
}

func (r *orderRepo) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Order{}, id)
	if res.Error != nil {
		logger.Error(ctx, "order delete failed", res.Error, zap.Uint64("order_id", id))
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddProducts links products to an order; ones already linked are left alone.
func (r *orderRepo) AddProducts(ctx context.Context, orderID uint64, productIDs []uint64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, orderID); err != nil {
			return err
		}
		return linkProducts(tx, orderID, productIDs)
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Error(ctx, "order add products failed", err, zap.Uint64("order_id", orderID))
	}
	return err
}

func (r *orderRepo) withProducts(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Products", func(db *gorm.DB) *gorm.DB {
		return db.Order("products.id ASC")
	})
}

func exists(tx *gorm.DB, orderID uint64) error {
	var o domain.Order
	if err := tx.Select("id").First(&o, orderID).Error; err != nil {
		return notFound(err)
	}
	return nil
}

func linkProducts(tx *gorm.DB, orderID uint64, productIDs []uint64) error {
	productIDs = domain.DedupeProductIDs(productIDs)
	if len(productIDs) == 0 {
		return nil
	}
	rows := make([]orderProduct, 0, len(productIDs))
	for _, id := range productIDs {
		rows = append(rows, orderProduct{OrderID: orderID, ProductID: id})
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}
