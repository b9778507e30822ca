package services

import (
	"foodhub/entity"
	"foodhub/pkg/apperr"
	"foodhub/pkg/logger"
	"foodhub/repository"
)

type CouponService struct {
	Repo      *repository.CouponRepository
	OrderRepo *repository.OrderRepository
}

func NewCouponService(cr *repository.CouponRepository, or *repository.OrderRepository) *CouponService {
	return &CouponService{Repo: cr, OrderRepo: or}
}

type CreateCouponIn struct {
	Code     string  `json:"code" binding:"required"`
	Discount float64 `json:"discount" binding:"required"`
	Active   *bool   `json:"active"`
}

func (s *CouponService) Create(in *CreateCouponIn) (*entity.Coupon, error) {
	if in.Discount <= 0 {
		return nil, apperr.InvalidArgumentf("discount must be positive")
	}
	exists, err := s.Repo.CodeExists(in.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.InvalidArgumentf("coupon code already exists: %s", in.Code)
	}

	coupon := &entity.Coupon{Code: in.Code, Discount: in.Discount, Active: true}
	if in.Active != nil {
		coupon.Active = *in.Active
	}
	if err := s.Repo.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) GetByCode(code string) (*entity.Coupon, error) {
	return s.Repo.FindByCode(code)
}

func (s *CouponService) List() ([]entity.Coupon, error) {
	return s.Repo.List()
}

type UpdateCouponIn struct {
	Code     *string  `json:"code"`
	Discount *float64 `json:"discount"`
	Active   *bool    `json:"active"`
}

func (s *CouponService) Update(id uint, in *UpdateCouponIn) (*entity.Coupon, error) {
	coupon, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if in.Code != nil && *in.Code != coupon.Code {
		exists, err := s.Repo.CodeExists(*in.Code)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperr.InvalidArgumentf("coupon code already exists: %s", *in.Code)
		}
		coupon.Code = *in.Code
	}
	if in.Discount != nil {
		if *in.Discount <= 0 {
			return nil, apperr.InvalidArgumentf("discount must be positive")
		}
		coupon.Discount = *in.Discount
	}
	if in.Active != nil {
		coupon.Active = *in.Active
	}

	if err := s.Repo.Save(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

// Apply discounts the order total by the coupon percentage. A coupon may be
// applied once per order and only while the order is PLACED; the total never
// goes below zero.
func (s *CouponService) Apply(orderID uint, code string) (*entity.Order, error) {
	coupon, err := s.Repo.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if !coupon.Active {
		return nil, apperr.InvalidArgumentf("coupon is not active: %s", code)
	}

	order, err := s.OrderRepo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != entity.StatusPlaced {
		return nil, apperr.InvalidStatef("cannot apply coupon to order in status %s", order.Status)
	}
	if order.CouponCode != nil {
		return nil, apperr.InvalidStatef("a coupon has already been applied to order %d", orderID)
	}

	discountAmount := coupon.Discount / 100 * order.TotalAmount
	newTotal := order.TotalAmount - discountAmount
	if newTotal < 0 {
		newTotal = 0
	}

	if err := s.OrderRepo.ApplyCoupon(orderID, newTotal, code); err != nil {
		return nil, err
	}

	order.TotalAmount = newTotal
	order.CouponCode = &coupon.Code
	logger.S().Infow("coupon applied",
		"orderId", orderID, "code", code, "newTotal", newTotal)
	return order, nil
}
