package repository

import (
	"errors"

	"foodhub/entity"
	"foodhub/pkg/apperr"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) CreateMenu(m *entity.FoodMenu) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) FindMenuByID(id uint) (*entity.FoodMenu, error) {
	var m entity.FoodMenu
	if err := r.DB.Preload("Items").First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("food menu %d not found", id)
		}
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) MenuByRestaurant(restaurantID uint) (*entity.FoodMenu, error) {
	var m entity.FoodMenu
	err := r.DB.Preload("Items").
		Where("restaurant_id = ?", restaurantID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("no menu for restaurant %d", restaurantID)
	}
	return &m, err
}

func (r *MenuRepository) CreateItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) ItemByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("menu item %d not found", id)
		}
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) ItemsByIDs(ids []uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	if len(ids) == 0 {
		return items, nil
	}
	err := r.DB.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *MenuRepository) ItemsByCuisine(restaurantID uint, cuisine string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Joins("JOIN food_menus ON food_menus.id = menu_items.food_menu_id").
		Where("food_menus.restaurant_id = ? AND menu_items.cuisine_type = ?", restaurantID, cuisine).
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) ItemsByMealType(restaurantID uint, mealType string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Joins("JOIN food_menus ON food_menus.id = menu_items.food_menu_id").
		Where("food_menus.restaurant_id = ? AND menu_items.meal_type = ?", restaurantID, mealType).
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) ItemsByCuisines(cuisines []string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	if len(cuisines) == 0 {
		return items, nil
	}
	err := r.DB.Where("cuisine_type IN ?", cuisines).Find(&items).Error
	return items, err
}

func (r *MenuRepository) TopPopular(limit int) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("times_ordered DESC").Limit(limit).Find(&items).Error
	return items, err
}

// IncrementTimesOrdered bumps the popularity counter inside the caller's
// transaction.
func (r *MenuRepository) IncrementTimesOrdered(tx *gorm.DB, itemID uint, by int) error {
	return tx.Model(&entity.MenuItem{}).
		Where("id = ?", itemID).
		UpdateColumn("times_ordered", gorm.Expr("times_ordered + ?", by)).Error
}

func (r *MenuRepository) AddReview(review *entity.Review) error {
	return r.DB.Create(review).Error
}
