package repository

import (
	"errors"

	"foodhub/entity"
	"foodhub/pkg/apperr"

	"gorm.io/gorm"
)

type CouponRepository struct{ DB *gorm.DB }

func NewCouponRepository(db *gorm.DB) *CouponRepository { return &CouponRepository{DB: db} }

func (r *CouponRepository) Create(c *entity.Coupon) error {
	return r.DB.Create(c).Error
}

func (r *CouponRepository) FindByID(id uint) (*entity.Coupon, error) {
	var c entity.Coupon
	if err := r.DB.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("coupon %d not found", id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) FindByCode(code string) (*entity.Coupon, error) {
	var c entity.Coupon
	if err := r.DB.Where("code = ?", code).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("coupon code %s not found", code)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Coupon{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *CouponRepository) List() ([]entity.Coupon, error) {
	var out []entity.Coupon
	err := r.DB.Find(&out).Error
	return out, err
}

func (r *CouponRepository) Save(c *entity.Coupon) error {
	return r.DB.Save(c).Error
}

func (r *CouponRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Coupon{}, id).Error
}
