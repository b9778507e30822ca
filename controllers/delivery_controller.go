package controllers

import (
	"foodhub/pkg/resp"
	"foodhub/services"

	"github.com/gin-gonic/gin"
)

type DeliveryController struct {
	Svc      *services.DeliveryService
	OrderSvc *services.OrderService
}

func NewDeliveryController(s *services.DeliveryService, os *services.OrderService) *DeliveryController {
	return &DeliveryController{Svc: s, OrderSvc: os}
}

type assignDeliveryReq struct {
	DeliveryBoyID uint `json:"deliveryBoyId" binding:"required"`
}

// PUT /api/admin/orders/:id/assign-delivery
func (h *DeliveryController) Assign(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req assignDeliveryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.OrderSvc.AssignDelivery(orderID, req.DeliveryBoyID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /api/users/deliveries/:id
func (h *DeliveryController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	delivery, err := h.Svc.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, delivery)
}

// GET /api/users/orders/:id/delivery
func (h *DeliveryController) GetByOrder(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	delivery, err := h.Svc.GetByOrder(orderID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, delivery)
}

// GET /api/users/deliveries/rider/:riderId
func (h *DeliveryController) ListByRider(c *gin.Context) {
	riderID, ok := paramID(c, "riderId")
	if !ok {
		return
	}
	deliveries, err := h.Svc.ListByRider(riderID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": deliveries})
}

// PUT /api/users/deliveries/:id/complete
func (h *DeliveryController) Complete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.CompleteDeliveryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	delivery, err := h.Svc.Complete(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, delivery)
}
