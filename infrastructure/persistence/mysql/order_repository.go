package mysql

import (
	"context"
	"errors"

	"orderservice/domain/order"
	"orderservice/domain/shared"
	"orderservice/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// OrderRepository MySQL/GORM implementation of the order repository.
// The repository only persists the aggregate; it publishes nothing.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository Create the order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Save Persist the order and its items atomically. Items are managed by
// hand with a delete-then-insert strategy instead of GORM associations.
func (r *OrderRepository) Save(ctx context.Context, o *order.Order) (*order.Order, error) {
	orderPO, itemPOs := po.FromOrderDomain(o)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(orderPO).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", orderPO.ID).Delete(&po.OrderItemPO{}).Error; err != nil {
			return err
		}
		if len(itemPOs) > 0 {
			if err := tx.Create(&itemPOs).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

// FindByID Load an order by its internal id
func (r *OrderRepository) FindByID(ctx context.Context, id shared.OrderID) (*order.Order, error) {
	var orderPO po.OrderPO
	result := r.db.WithContext(ctx).First(&orderPO, "id = ?", id.String())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, order.NewOrderNotFoundError(id.String())
		}
		return nil, result.Error
	}
	return r.loadAggregate(ctx, orderPO)
}

// FindByTrackingID Load an order by its customer-facing tracking id
func (r *OrderRepository) FindByTrackingID(ctx context.Context, trackingID order.TrackingID) (*order.Order, error) {
	var orderPO po.OrderPO
	result := r.db.WithContext(ctx).First(&orderPO, "tracking_id = ?", trackingID.String())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, order.NewOrderNotFoundError(trackingID.String())
		}
		return nil, result.Error
	}
	return r.loadAggregate(ctx, orderPO)
}

// loadAggregate fetches the order's items manually, keeping the aggregate
// boundary explicit instead of relying on Preload
func (r *OrderRepository) loadAggregate(ctx context.Context, orderPO po.OrderPO) (*order.Order, error) {
	var itemPOs []po.OrderItemPO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderPO.ID).
		Order("id ASC").
		Find(&itemPOs).Error; err != nil {
		return nil, err
	}
	return orderPO.ToDomain(itemPOs)
}
