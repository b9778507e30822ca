package repository

import (
	"errors"

	"foodhub/entity"
	"foodhub/pkg/apperr"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user %d not found", id)
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user with email %s not found", email)
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.User{}, id).Error
}

// Save persists all fields of an already loaded user.
func (r *UserRepository) Save(u *entity.User) error {
	return r.DB.Save(u).Error
}

func (r *UserRepository) AddLikedMenuItem(u *entity.User, item *entity.MenuItem) error {
	return r.DB.Model(u).Association("LikedMenuItems").Append(item)
}

func (r *UserRepository) LikedMenuItems(userID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Model(&entity.User{Model: gorm.Model{ID: userID}}).
		Association("LikedMenuItems").Find(&items)
	return items, err
}

func (r *UserRepository) FavoriteCuisines(userID uint) ([]string, error) {
	var cuisines []string
	err := r.DB.Model(&entity.FavoriteCuisine{}).
		Where("user_id = ?", userID).
		Pluck("cuisine", &cuisines).Error
	return cuisines, err
}

// ReplaceFavoriteCuisines swaps the user's cuisine preferences in one
// transaction.
func (r *UserRepository) ReplaceFavoriteCuisines(userID uint, cuisines []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Delete(&entity.FavoriteCuisine{}).Error; err != nil {
			return err
		}
		for _, cuisine := range cuisines {
			row := entity.FavoriteCuisine{UserID: userID, Cuisine: cuisine}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
