package mysql

import (
	"context"

	"orderservice/domain/shared"
	"orderservice/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// CustomerRepository MySQL implementation of the customer read model port
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Exists Check the replicated customer table for the given id
func (r *CustomerRepository) Exists(ctx context.Context, customerID shared.CustomerID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&po.CustomerPO{}).
		Where("id = ?", customerID.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
