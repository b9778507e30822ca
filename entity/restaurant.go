package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name    string  `gorm:"not null" json:"name"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating"`

	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`

	OwnerID uint `json:"ownerId"`
	Owner   User `json:"-"`

	Menus  []FoodMenu `json:"-"`
	Orders []Order    `json:"-"`
}
