package entity

import (
	"gorm.io/gorm"
)

type FoodMenu struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Items []MenuItem `json:"items"`
}
