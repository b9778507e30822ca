package repository

import (
	"errors"

	"foodhub/entity"
	"foodhub/pkg/apperr"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("restaurant %d not found", id)
		}
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *RestaurantRepository) List() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) SearchByName(name string) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Where("name LIKE ?", "%"+name+"%").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) SearchByAddress(city string) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Where("address LIKE ?", "%"+city+"%").Find(&out).Error
	return out, err
}

// ListByMinRating returns candidates for the nearby query; distance
// filtering happens in the service.
func (r *RestaurantRepository) ListByMinRating(minRating float64) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Where("rating >= ?", minRating).Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) Save(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

func (r *RestaurantRepository) IsOwnedBy(restID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND owner_id = ?", restID, userID).
		Count(&count).Error
	return count > 0, err
}
