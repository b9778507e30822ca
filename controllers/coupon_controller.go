package controllers

import (
	"foodhub/pkg/resp"
	"foodhub/services"

	"github.com/gin-gonic/gin"
)

type CouponController struct{ Svc *services.CouponService }

func NewCouponController(s *services.CouponService) *CouponController {
	return &CouponController{Svc: s}
}

// POST /api/admin/coupons
func (h *CouponController) Create(c *gin.Context) {
	var req services.CreateCouponIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	coupon, err := h.Svc.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, coupon)
}

// PUT /api/admin/coupons/:id
func (h *CouponController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.UpdateCouponIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	coupon, err := h.Svc.Update(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, coupon)
}

// DELETE /api/admin/coupons/:id
func (h *CouponController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// GET /api/admin/coupons
func (h *CouponController) List(c *gin.Context) {
	coupons, err := h.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": coupons})
}

// GET /api/users/coupons/:code
func (h *CouponController) GetByCode(c *gin.Context) {
	coupon, err := h.Svc.GetByCode(c.Param("code"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, coupon)
}
