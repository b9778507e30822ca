package repository

import (
	"errors"

	"foodhub/entity"
	"foodhub/pkg/apperr"

	"gorm.io/gorm"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: db} }

func (r *PaymentRepository) Create(p *entity.Payment) error {
	return r.DB.Create(p).Error
}

func (r *PaymentRepository) FindByID(id uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("payment %d not found", id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) FindByOrderID(orderID uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.Where("order_id = ?", orderID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("no payment for order %d", orderID)
		}
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ExistsForOrder(orderID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Payment{}).Where("order_id = ?", orderID).Count(&count).Error
	return count > 0, err
}
