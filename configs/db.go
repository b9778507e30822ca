package configs

import (
	"foodhub/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{}, &entity.FavoriteCuisine{},
		&entity.Restaurant{},
		&entity.FoodMenu{}, &entity.MenuItem{}, &entity.Review{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Coupon{},
		&entity.Payment{},
		&entity.Delivery{},
	)
}
