package repository

import (
	"errors"

	"foodhub/entity"
	"foodhub/pkg/apperr"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("order %d not found", id)
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListByUser(userID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListByUserAndRestaurant(userID, restaurantID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Order("id DESC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// ApplyCoupon persists the discounted total and the coupon code together.
func (r *OrderRepository) ApplyCoupon(id uint, total float64, code string) error {
	return r.DB.Model(&entity.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{"total_amount": total, "coupon_code": code}).Error
}

func (r *OrderRepository) AssignDelivery(tx *gorm.DB, id, deliveryBoyID uint) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", id).
		Update("delivery_boy_id", deliveryBoyID).Error
}
