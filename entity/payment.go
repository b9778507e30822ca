package entity

import (
	"gorm.io/gorm"
)

const PaymentSuccess = "SUCCESS"

type Payment struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Status    string  `json:"status"`
	Reference string  `gorm:"uniqueIndex" json:"reference"`
}
