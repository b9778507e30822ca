package controllers

import (
	"foodhub/pkg/resp"
	"foodhub/services"
	"foodhub/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

type createMenuReq struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	Name         string `json:"name" binding:"required"`
}

// POST /api/admin/menus
func (h *MenuController) CreateMenu(c *gin.Context) {
	var req createMenuReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu, err := h.Svc.CreateMenu(req.RestaurantID, req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, menu)
}

// GET /api/users/menus/:restaurantId
func (h *MenuController) MenuByRestaurant(c *gin.Context) {
	restID, ok := paramID(c, "restaurantId")
	if !ok {
		return
	}
	menu, err := h.Svc.MenuByRestaurant(restID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, menu)
}

// POST /api/admin/menu-items
func (h *MenuController) CreateItem(c *gin.Context) {
	var req services.CreateMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.CreateItem(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// GET /api/users/menu-items/:restaurantId/cuisine/:cuisineType
func (h *MenuController) ItemsByCuisine(c *gin.Context) {
	restID, ok := paramID(c, "restaurantId")
	if !ok {
		return
	}
	items, err := h.Svc.ItemsByCuisine(restID, c.Param("cuisineType"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /api/users/menu-items/:restaurantId/meal/:mealType
func (h *MenuController) ItemsByMealType(c *gin.Context) {
	restID, ok := paramID(c, "restaurantId")
	if !ok {
		return
	}
	items, err := h.Svc.ItemsByMealType(restID, c.Param("mealType"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /api/users/reviews/:menuItemId
func (h *MenuController) AddReview(c *gin.Context) {
	itemID, ok := paramID(c, "menuItemId")
	if !ok {
		return
	}
	var req services.AddReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	review, err := h.Svc.AddReview(utils.CurrentUserID(c), itemID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, review)
}
