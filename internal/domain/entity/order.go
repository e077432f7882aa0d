package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine represents one SKU line item of a purchase order. An order may
// span several line items; they share OrderID and differ by SKUID, so the
// primary key is the (OrderID, SKUID) pair.
//
// MobileNumber references a customer by convention only: lines whose number
// matches no customer stay in the table and are excluded from joined KPIs.
type OrderLine struct {
	OrderID       string          `gorm:"size:15;primaryKey" json:"order_id"`
	SKUID         string          `gorm:"size:10;primaryKey;column:sku_id" json:"sku_id"`
	MobileNumber  string          `gorm:"size:15;index;not null" json:"mobile_number"`
	OrderDateTime time.Time       `gorm:"not null" json:"order_date_time"`
	SKUCount      int             `gorm:"not null;column:sku_count" json:"sku_count"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
}

// TableName returns the table name for the OrderLine model
func (OrderLine) TableName() string {
	return "orders"
}

// Month returns the calendar-month bucket ("2006-01") of the line's order
// timestamp in the given location.
func (o OrderLine) Month(loc *time.Location) string {
	return o.OrderDateTime.In(loc).Format("2006-01")
}
