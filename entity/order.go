package entity

import (
	"gorm.io/gorm"
)

const (
	StatusPlaced     = "PLACED"
	StatusPreparing  = "PREPARING"
	StatusCooking    = "COOKING"
	StatusPacked     = "PACKED"
	StatusDispatched = "DISPATCHED"
	StatusDelivered  = "DELIVERED"
	StatusCancelled  = "CANCELLED"
)

// ValidOrderStatus reports whether s is a recognized order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case StatusPlaced, StatusPreparing, StatusCooking, StatusPacked,
		StatusDispatched, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order freezes the cart contents at checkout. Items and TotalAmount are
// immutable afterwards except for a single coupon application.
type Order struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	DeliveryAddress string  `json:"deliveryAddress"`
	Status          string  `gorm:"not null" json:"status"`
	TotalAmount     float64 `json:"totalAmount"`

	CouponCode    *string `json:"couponCode,omitempty"`
	DeliveryBoyID *uint   `json:"deliveryBoyId,omitempty"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	Payments   []Payment  `json:"-"`
	Deliveries []Delivery `json:"-"`
}

// OrderItem is a name/price/quantity snapshot taken from the cart.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
