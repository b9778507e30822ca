package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	DeliveryAssigned  = "ASSIGNED"
	DeliveryCompleted = "COMPLETED"
)

// Delivery binds a rider to an order; one record per order.
type Delivery struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	DeliveryBoyID uint `gorm:"index" json:"deliveryBoyId"`
	DeliveryBoy   User `gorm:"foreignKey:DeliveryBoyID" json:"-"`

	Status       string     `json:"status"`
	DeliveryTime *time.Time `json:"deliveryTime,omitempty"`
	Feedback     string     `json:"feedback,omitempty"`
	Rating       *float64   `json:"rating,omitempty"`
}
