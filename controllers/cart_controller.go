package controllers

import (
	"strconv"

	"foodhub/pkg/resp"
	"foodhub/services"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// PUT /api/users/cart?userId=&menuItemId=&quantity=
func (h *CartController) Update(c *gin.Context) {
	userID, ok := targetUserID(c)
	if !ok {
		return
	}
	itemID, ok := queryID(c, "menuItemId")
	if !ok {
		return
	}
	qty, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		resp.BadRequest(c, "bad quantity")
		return
	}

	cart, err := h.Svc.UpdateCart(userID, itemID, qty)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// GET /api/users/cart?userId=
func (h *CartController) Get(c *gin.Context) {
	userID, ok := targetUserID(c)
	if !ok {
		return
	}
	cart, err := h.Svc.Get(userID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /api/users/cart?userId=
func (h *CartController) Clear(c *gin.Context) {
	userID, ok := targetUserID(c)
	if !ok {
		return
	}
	if err := h.Svc.Clear(userID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
