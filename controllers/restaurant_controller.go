package controllers

import (
	"strconv"

	"foodhub/pkg/resp"
	"foodhub/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// POST /api/admin/restaurants
func (h *RestaurantController) Create(c *gin.Context) {
	var req services.CreateRestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := h.Svc.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, rest)
}

// GET /restaurants?name=&city=
func (h *RestaurantController) List(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		out, err := h.Svc.SearchByName(name)
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, gin.H{"items": out})
		return
	}
	if city := c.Query("city"); city != "" {
		out, err := h.Svc.SearchByCity(city)
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, gin.H{"items": out})
		return
	}
	out, err := h.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": out})
}

// GET /restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	rest, err := h.Svc.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /api/users/:userId/restaurants/nearby?minRating=&maxKm=
func (h *RestaurantController) Nearby(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}
	minRating, err := strconv.ParseFloat(c.DefaultQuery("minRating", "0"), 64)
	if err != nil {
		resp.BadRequest(c, "bad minRating")
		return
	}
	maxKm, err := strconv.ParseFloat(c.DefaultQuery("maxKm", "5"), 64)
	if err != nil {
		resp.BadRequest(c, "bad maxKm")
		return
	}

	out, err := h.Svc.Nearby(userID, minRating, maxKm)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": out})
}
