package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Comment string  `json:"comment"`
	Rating  float64 `json:"rating"`

	MenuItemID uint     `gorm:"index" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	UserID uint `json:"userId"`
	User   User `json:"-"`
}
