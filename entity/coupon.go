package entity

import (
	"gorm.io/gorm"
)

// Coupon carries a percentage discount, applicable once per eligible order.
type Coupon struct {
	gorm.Model
	Code     string  `gorm:"uniqueIndex;not null" json:"code"`
	Discount float64 `json:"discount"` // percentage, e.g. 10 for 10% off
	Active   bool    `gorm:"default:true" json:"active"`
}
