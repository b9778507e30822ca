package main

import (
	"foodhub/configs"
	"foodhub/controllers"
	"foodhub/pkg/cache"
	"foodhub/pkg/logger"
	"foodhub/pkg/recsvc"
	"foodhub/repository"
	"foodhub/routes"
	"foodhub/services"
	"foodhub/ws"
)

func main() {
	cfg := configs.LoadConfig()
	logger.Init(cfg.Env)
	defer logger.Sync()

	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()
	if err := configs.SeedAdmin(); err != nil {
		logger.S().Fatalw("seed admin failed", "err", err)
	}
	db := configs.DB()

	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)

	hub := ws.NewTrackingHub()
	go hub.Run()

	var recCache services.RecommendationCache
	if cfg.RedisAddr != "" {
		recCache = cache.NewRecommendationCache(cfg.RedisAddr)
	}
	var ranker services.Ranker
	if cfg.RecommenderURL != "" {
		ranker = recsvc.NewClient(cfg.RecommenderURL)
	}

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(userRepo, menuRepo)
	restSvc := services.NewRestaurantService(restRepo, userRepo)
	menuSvc := services.NewMenuService(menuRepo, restRepo, userRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo, userRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, menuRepo,
		userRepo, restRepo, couponRepo, deliveryRepo, hub)
	couponSvc := services.NewCouponService(couponRepo, orderRepo)
	paymentSvc := services.NewPaymentService(paymentRepo, orderSvc)
	deliverySvc := services.NewDeliveryService(deliveryRepo, userRepo)
	recSvc := services.NewRecommendationService(userRepo, menuRepo, orderRepo, recCache, ranker)

	ctl := &routes.Controllers{
		Auth:       controllers.NewAuthController(authSvc),
		User:       controllers.NewUserController(userSvc, recSvc),
		Restaurant: controllers.NewRestaurantController(restSvc),
		Menu:       controllers.NewMenuController(menuSvc),
		Cart:       controllers.NewCartController(cartSvc),
		Order:      controllers.NewOrderController(orderSvc, couponSvc),
		Coupon:     controllers.NewCouponController(couponSvc),
		Payment:    controllers.NewPaymentController(paymentSvc),
		Delivery:   controllers.NewDeliveryController(deliverySvc, orderSvc),
		Hub:        hub,
	}

	r := routes.SetupRouter(cfg, ctl)

	logger.S().Infow("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.S().Fatalw("server exited", "err", err)
	}
}
