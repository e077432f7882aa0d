package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yaseenahmed1407/AkasaAir/internal/domain/entity"
	domainRepo "github.com/yaseenahmed1407/AkasaAir/internal/domain/repository"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

// UpsertBatch writes the batch in one transaction, keyed by the composite
// (order_id, sku_id) primary key. Replaying a fully processed file is a
// no-op: every row lands on its previous values.
func (r *orderRepository) UpsertBatch(ctx context.Context, orders []entity.OrderLine) error {
	if len(orders) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}, {Name: "sku_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"mobile_number", "order_date_time", "sku_count", "total_amount"}),
		}).Create(&orders).Error
	})
}

func (r *orderRepository) ListAll(ctx context.Context) ([]entity.OrderLine, error) {
	var orders []entity.OrderLine
	err := r.db.WithContext(ctx).Order("order_id ASC, sku_id ASC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.OrderLine{}).Count(&count).Error
	return count, err
}
