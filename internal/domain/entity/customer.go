package entity

// Customer represents a retail customer reconciled from the customers feed.
// CustomerID is the primary identity; MobileNumber is unique and is the key
// order lines join on.
type Customer struct {
	CustomerID   string `gorm:"size:10;primaryKey" json:"customer_id"`
	CustomerName string `gorm:"size:100;not null" json:"customer_name"`
	MobileNumber string `gorm:"size:15;uniqueIndex;not null" json:"mobile_number"`
	Region       string `gorm:"size:50;not null" json:"region"`
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
