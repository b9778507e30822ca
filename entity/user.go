package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
	RoleOwner    = "owner"
	RoleRider    = "rider"
)

// ValidRole reports whether role is one of the recognized account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleAdmin, RoleOwner, RoleRider:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `gorm:"not null;default:customer" json:"role"`

	// Optional location, used by the nearby-restaurants query.
	Longitude *float64 `json:"longitude,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`

	// Relations — preload only where needed
	Orders           []Order          `json:"-"`
	RestaurantsOwned []Restaurant     `gorm:"foreignKey:OwnerID" json:"-"`
	LikedMenuItems   []MenuItem       `gorm:"many2many:user_liked_menu_items;" json:"-"`
	FavoriteCuisines []FavoriteCuisine `json:"-"`
}

// HasLocation reports whether both coordinates are set.
func (u *User) HasLocation() bool {
	return u.Longitude != nil && u.Latitude != nil
}

type FavoriteCuisine struct {
	gorm.Model
	UserID  uint   `gorm:"index" json:"userId"`
	Cuisine string `gorm:"not null" json:"cuisine"`
}
