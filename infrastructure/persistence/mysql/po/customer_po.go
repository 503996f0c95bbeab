package po

// CustomerPO Customer read model row, replicated from the customer service.
// The order service only ever checks existence.
type CustomerPO struct {
	ID        string `gorm:"primaryKey;size:36"`
	Username  string `gorm:"size:50;not null"`
	FirstName string `gorm:"size:50;not null"`
	LastName  string `gorm:"size:50;not null"`
}

func (CustomerPO) TableName() string {
	return "order_customers"
}
