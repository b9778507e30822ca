package repository

import (
	"errors"

	"foodhub/entity"
	"foodhub/pkg/apperr"

	"gorm.io/gorm"
)

type DeliveryRepository struct{ DB *gorm.DB }

func NewDeliveryRepository(db *gorm.DB) *DeliveryRepository {
	return &DeliveryRepository{DB: db}
}

func (r *DeliveryRepository) Create(tx *gorm.DB, d *entity.Delivery) error {
	return tx.Create(d).Error
}

func (r *DeliveryRepository) FindByID(id uint) (*entity.Delivery, error) {
	var d entity.Delivery
	if err := r.DB.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("delivery %d not found", id)
		}
		return nil, err
	}
	return &d, nil
}

func (r *DeliveryRepository) FindByOrderID(orderID uint) (*entity.Delivery, error) {
	var d entity.Delivery
	if err := r.DB.Where("order_id = ?", orderID).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("no delivery for order %d", orderID)
		}
		return nil, err
	}
	return &d, nil
}

func (r *DeliveryRepository) ListByDeliveryBoy(deliveryBoyID uint) ([]entity.Delivery, error) {
	var out []entity.Delivery
	err := r.DB.Where("delivery_boy_id = ?", deliveryBoyID).
		Order("id DESC").
		Find(&out).Error
	return out, err
}

func (r *DeliveryRepository) Save(d *entity.Delivery) error {
	return r.DB.Save(d).Error
}
