package controllers

import (
	"foodhub/pkg/resp"
	"foodhub/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Svc    *services.UserService
	RecSvc *services.RecommendationService
}

func NewUserController(s *services.UserService, rs *services.RecommendationService) *UserController {
	return &UserController{Svc: s, RecSvc: rs}
}

// POST /users (admin)
func (h *UserController) Create(c *gin.Context) {
	var req services.CreateUserIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, user)
}

// GET /api/users/:userId
func (h *UserController) Get(c *gin.Context) {
	id, ok := paramID(c, "userId")
	if !ok {
		return
	}
	user, err := h.Svc.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// PUT /api/users/:userId
func (h *UserController) Update(c *gin.Context) {
	id, ok := paramID(c, "userId")
	if !ok {
		return
	}
	var req services.UpdateUserIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.Update(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// DELETE /api/users/:userId (admin)
func (h *UserController) Delete(c *gin.Context) {
	id, ok := paramID(c, "userId")
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// POST /api/users/:userId/like/:menuItemId
func (h *UserController) LikeMenuItem(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}
	itemID, ok := paramID(c, "menuItemId")
	if !ok {
		return
	}
	if err := h.Svc.LikeMenuItem(userID, itemID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"liked": itemID})
}

// GET /api/users/:userId/liked
func (h *UserController) LikedMenuItems(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}
	items, err := h.Svc.LikedMenuItems(userID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /api/users/:userId/recommendations
func (h *UserController) Recommendations(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}
	items, err := h.RecSvc.GetRecommendations(c.Request.Context(), userID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type preferencesReq struct {
	FavoriteCuisines []string `json:"favoriteCuisines"`
}

// PUT /api/users/:userId/preferences
func (h *UserController) UpdatePreferences(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}
	var req preferencesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.RecSvc.UpdatePreferences(c.Request.Context(), userID, req.FavoriteCuisines); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"favoriteCuisines": req.FavoriteCuisines})
}
