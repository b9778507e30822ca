package controllers

import (
	"foodhub/entity"
	"foodhub/pkg/resp"
	"foodhub/services"
	"foodhub/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc       *services.OrderService
	CouponSvc *services.CouponService
}

func NewOrderController(s *services.OrderService, cs *services.CouponService) *OrderController {
	return &OrderController{Svc: s, CouponSvc: cs}
}

type placeOrderReq struct {
	DeliveryAddress string `json:"deliveryAddress"`
}

// PUT /api/users/orders?userId=&restaurantId=
func (h *OrderController) Place(c *gin.Context) {
	userID, ok := targetUserID(c)
	if !ok {
		return
	}
	restID, ok := queryID(c, "restaurantId")
	if !ok {
		return
	}
	var req placeOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.PlaceOrder(userID, restID, req.DeliveryAddress)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// canTouchOrder rejects customers acting on somebody else's order.
func (h *OrderController) canTouchOrder(c *gin.Context, order *entity.Order) bool {
	role := utils.CurrentRole(c)
	if role == entity.RoleCustomer && order.UserID != utils.CurrentUserID(c) {
		resp.Forbidden(c, "forbidden")
		return false
	}
	return true
}

// GET /api/users/orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := h.Svc.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if !h.canTouchOrder(c, order) {
		return
	}
	resp.OK(c, order)
}

// GET /api/users/orders?userId=
func (h *OrderController) ListForUser(c *gin.Context) {
	userID, ok := targetUserID(c)
	if !ok {
		return
	}
	orders, err := h.Svc.ListByUser(userID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /api/users/orders/restaurant/:restaurantId?userId=
func (h *OrderController) ListForRestaurant(c *gin.Context) {
	userID, ok := targetUserID(c)
	if !ok {
		return
	}
	restID, ok := paramID(c, "restaurantId")
	if !ok {
		return
	}
	orders, err := h.Svc.ListByUserAndRestaurant(userID, restID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// PUT /api/admin/orders/:id/status?status=
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	status := c.Query("status")
	if status == "" {
		resp.BadRequest(c, "status is required")
		return
	}
	order, err := h.Svc.UpdateStatus(id, status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /api/users/orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := h.Svc.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if !h.canTouchOrder(c, order) {
		return
	}
	order, err = h.Svc.Cancel(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /api/users/orders/:id/status
func (h *OrderController) Status(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	status, err := h.Svc.Status(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": status})
}

// POST /api/users/orders/:id/coupon?couponCode=
func (h *OrderController) ApplyCoupon(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	code := c.Query("couponCode")
	if code == "" {
		resp.BadRequest(c, "couponCode is required")
		return
	}
	order, err := h.Svc.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if !h.canTouchOrder(c, order) {
		return
	}
	order, err = h.CouponSvc.Apply(id, code)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /api/users/orders/:id/bill
func (h *OrderController) Bill(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	bill, err := h.Svc.GetBill(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, bill)
}
