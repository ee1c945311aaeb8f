package mysql

import (
	"context"

	"shop-service/internal/domain"
	"shop-service/internal/logger"
	"shop-service/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, p *domain.Product) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		logger.Error(ctx, "product create failed", err)
		return err
	}
	return nil
}

func (r *productRepo) FindByID(ctx context.Context, id uint64) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *productRepo) FindByIDs(ctx context.Context, ids []uint64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []domain.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&out).Error; err != nil {
		logger.Error(ctx, "product lookup failed", err)
		return nil, err
	}
	return out, nil
}

func (r *productRepo) List(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		logger.Error(ctx, "product list failed", err)
		return nil, err
	}
	return out, nil
}

func (r *productRepo) Update(ctx context.Context, p *domain.Product) error {
	res := r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("id = ?", p.ID).
		Select("name", "price", "available").
		Updates(p)
	if res.Error != nil {
		logger.Error(ctx, "product update failed", res.Error, zap.Uint64("product_id", p.ID))
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, p.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the product. Its order_products rows cascade; orders stay.
func (r *productRepo) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Product{}, id)
	if res.Error != nil {
		logger.Error(ctx, "product delete failed", res.Error, zap.Uint64("product_id", id))
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
