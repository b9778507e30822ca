package entity

import (
	"gorm.io/gorm"
)

const (
	Veg    = "VEG"
	NonVeg = "NON_VEG"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	CuisineType string  `json:"cuisineType"`
	MealType    string  `json:"mealType"`
	VegOrNonVeg string  `json:"vegOrNonVeg"`

	// Bumped by each placed order; feeds the popularity fallback
	// in recommendations.
	TimesOrdered int64   `gorm:"not null;default:0" json:"timesOrdered"`
	Rating       float64 `json:"rating"`

	FoodMenuID uint     `gorm:"index" json:"foodMenuId"`
	FoodMenu   FoodMenu `json:"-"`

	Reviews []Review `json:"-"`
}
