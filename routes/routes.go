package routes

import (
	"foodhub/configs"
	"foodhub/controllers"
	"foodhub/entity"
	"foodhub/middlewares"
	"foodhub/ws"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Auth       *controllers.AuthController
	User       *controllers.UserController
	Restaurant *controllers.RestaurantController
	Menu       *controllers.MenuController
	Cart       *controllers.CartController
	Order      *controllers.OrderController
	Coupon     *controllers.CouponController
	Payment    *controllers.PaymentController
	Delivery   *controllers.DeliveryController
	Hub        *ws.TrackingHub
}

func SetupRouter(cfg *configs.Config, ctl *Controllers) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	auth := r.Group("/auth")
	{
		auth.POST("/register", ctl.Auth.Register)
		auth.POST("/login", ctl.Auth.Login)
		auth.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), ctl.Auth.Me)
	}

	// Public browsing.
	r.GET("/restaurants", ctl.Restaurant.List)
	r.GET("/restaurants/:id", ctl.Restaurant.Detail)

	// Live order tracking; the browser websocket client cannot set headers,
	// so this endpoint is unauthenticated like the rest of the read surface.
	r.GET("/ws/orders/:id/track", ctl.Hub.HandleWebSocket)

	api := r.Group("/api/users", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		api.GET("/:userId", ctl.User.Get)
		api.PUT("/:userId", ctl.User.Update)
		api.POST("/:userId/like/:menuItemId", ctl.User.LikeMenuItem)
		api.GET("/:userId/liked", ctl.User.LikedMenuItems)
		api.GET("/:userId/recommendations", ctl.User.Recommendations)
		api.PUT("/:userId/preferences", ctl.User.UpdatePreferences)
		api.GET("/:userId/restaurants/nearby", ctl.Restaurant.Nearby)

		api.GET("/menus/:restaurantId", ctl.Menu.MenuByRestaurant)
		api.GET("/menu-items/:restaurantId/cuisine/:cuisineType", ctl.Menu.ItemsByCuisine)
		api.GET("/menu-items/:restaurantId/meal/:mealType", ctl.Menu.ItemsByMealType)
		api.POST("/reviews/:menuItemId", ctl.Menu.AddReview)

		api.PUT("/cart", ctl.Cart.Update)
		api.GET("/cart", ctl.Cart.Get)
		api.DELETE("/cart", ctl.Cart.Clear)

		api.PUT("/orders", ctl.Order.Place)
		api.GET("/orders", ctl.Order.ListForUser)
		api.GET("/orders/restaurant/:restaurantId", ctl.Order.ListForRestaurant)
		api.GET("/orders/:id", ctl.Order.Detail)
		api.GET("/orders/:id/status", ctl.Order.Status)
		api.POST("/orders/:id/cancel", ctl.Order.Cancel)
		api.POST("/orders/:id/coupon", ctl.Order.ApplyCoupon)
		api.GET("/orders/:id/bill", ctl.Order.Bill)
		api.POST("/orders/:id/payments", ctl.Payment.Record)
		api.GET("/orders/:id/payments", ctl.Payment.GetByOrder)
		api.GET("/orders/:id/payments/validate", ctl.Payment.Validate)
		api.GET("/orders/:id/delivery", ctl.Delivery.GetByOrder)

		api.GET("/payments/:id", ctl.Payment.Get)
		api.GET("/coupons/:code", ctl.Coupon.GetByCode)

		api.GET("/deliveries/:id", ctl.Delivery.Get)
		api.GET("/deliveries/rider/:riderId", ctl.Delivery.ListByRider)
		api.PUT("/deliveries/:id/complete", ctl.Delivery.Complete)
	}

	admin := r.Group("/api/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.POST("/users", ctl.User.Create)
		admin.DELETE("/users/:userId", ctl.User.Delete)

		admin.POST("/restaurants", ctl.Restaurant.Create)

		admin.POST("/coupons", ctl.Coupon.Create)
		admin.GET("/coupons", ctl.Coupon.List)
		admin.PUT("/coupons/:id", ctl.Coupon.Update)
		admin.DELETE("/coupons/:id", ctl.Coupon.Delete)

		admin.PUT("/orders/:id/assign-delivery", ctl.Delivery.Assign)
	}

	// Menu management is open to restaurant owners as well.
	kitchen := r.Group("/api/admin",
		middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin, entity.RoleOwner))
	{
		kitchen.POST("/menus", ctl.Menu.CreateMenu)
		kitchen.POST("/menu-items", ctl.Menu.CreateItem)
		kitchen.PUT("/orders/:id/status", ctl.Order.UpdateStatus)
	}

	return r
}
