package mysql

import (
	"context"
	"errors"

	"orderservice/domain/order"
	"orderservice/domain/shared"
	"orderservice/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// RestaurantRepository MySQL implementation of the restaurant read model
// port. Builds validation snapshots from the replicated restaurant and
// product tables.
type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// FindRestaurantInformation Load the restaurant and the requested products
// into a snapshot. Unavailable products are left out, so order items that
// reference them stay unconfirmed and fail validation.
func (r *RestaurantRepository) FindRestaurantInformation(ctx context.Context, restaurantID shared.RestaurantID, productIDs []shared.ProductID) (*order.Restaurant, error) {
	var restaurantPO po.RestaurantPO
	result := r.db.WithContext(ctx).First(&restaurantPO, "id = ?", restaurantID.String())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, order.NewRestaurantNotFoundError(restaurantID)
		}
		return nil, result.Error
	}

	ids := make([]string, len(productIDs))
	for i, id := range productIDs {
		ids[i] = id.String()
	}

	var productPOs []po.ProductPO
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND id IN ? AND available = ?", restaurantID.String(), ids, true).
		Find(&productPOs).Error; err != nil {
		return nil, err
	}

	products := make([]*order.Product, 0, len(productPOs))
	for _, productPO := range productPOs {
		productID, err := shared.ParseProductID(productPO.ID)
		if err != nil {
			return nil, err
		}
		products = append(products, order.NewConfirmedProduct(productID, productPO.Name, shared.NewMoney(productPO.Price)))
	}

	return order.NewRestaurant(order.RestaurantParams{
		ID:       restaurantID,
		Products: products,
		Active:   restaurantPO.Active,
	}), nil
}
