package controllers

import (
	"strconv"

	"foodhub/pkg/resp"
	"foodhub/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: s}
}

type recordPaymentReq struct {
	Amount float64 `json:"amount" binding:"required"`
	Method string  `json:"method"`
}

// POST /api/users/orders/:id/payments
func (h *PaymentController) Record(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req recordPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	payment, err := h.Svc.Record(orderID, req.Amount, req.Method)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, payment)
}

// GET /api/users/payments/:id
func (h *PaymentController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	payment, err := h.Svc.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, payment)
}

// GET /api/users/orders/:id/payments
func (h *PaymentController) GetByOrder(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	payment, err := h.Svc.GetByOrder(orderID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, payment)
}

// GET /api/users/orders/:id/payments/validate?amount=
func (h *PaymentController) Validate(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		resp.BadRequest(c, "bad amount")
		return
	}
	valid, err := h.Svc.Validate(orderID, amount)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"valid": valid})
}
