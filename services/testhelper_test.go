package services

import (
	"fmt"
	"testing"
	"time"

	"foodhub/entity"
	"foodhub/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.FavoriteCuisine{},
		&entity.Restaurant{}, &entity.FoodMenu{}, &entity.MenuItem{}, &entity.Review{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Coupon{}, &entity.Payment{}, &entity.Delivery{},
	))
	return db
}

type fixture struct {
	db  *gorm.DB
	seq int

	userRepo     *repository.UserRepository
	restRepo     *repository.RestaurantRepository
	menuRepo     *repository.MenuRepository
	cartRepo     *repository.CartRepository
	orderRepo    *repository.OrderRepository
	couponRepo   *repository.CouponRepository
	paymentRepo  *repository.PaymentRepository
	deliveryRepo *repository.DeliveryRepository

	auth       *AuthService
	users      *UserService
	rests      *RestaurantService
	menus      *MenuService
	carts      *CartService
	orders     *OrderService
	coupons    *CouponService
	payments   *PaymentService
	deliveries *DeliveryService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	f := &fixture{
		db:           db,
		userRepo:     repository.NewUserRepository(db),
		restRepo:     repository.NewRestaurantRepository(db),
		menuRepo:     repository.NewMenuRepository(db),
		cartRepo:     repository.NewCartRepository(db),
		orderRepo:    repository.NewOrderRepository(db),
		couponRepo:   repository.NewCouponRepository(db),
		paymentRepo:  repository.NewPaymentRepository(db),
		deliveryRepo: repository.NewDeliveryRepository(db),
	}

	f.auth = NewAuthService(f.userRepo, "test-secret", time.Hour)
	f.users = NewUserService(f.userRepo, f.menuRepo)
	f.rests = NewRestaurantService(f.restRepo, f.userRepo)
	f.menus = NewMenuService(f.menuRepo, f.restRepo, f.userRepo)
	f.carts = NewCartService(db, f.cartRepo, f.menuRepo, f.userRepo)
	f.orders = NewOrderService(db, f.orderRepo, f.cartRepo, f.menuRepo,
		f.userRepo, f.restRepo, f.couponRepo, f.deliveryRepo, nil)
	f.coupons = NewCouponService(f.couponRepo, f.orderRepo)
	f.payments = NewPaymentService(f.paymentRepo, f.orders)
	f.deliveries = NewDeliveryService(f.deliveryRepo, f.userRepo)
	return f
}

func (f *fixture) seedUser(t *testing.T, role string) *entity.User {
	t.Helper()
	f.seq++
	u := &entity.User{
		Email:    fmt.Sprintf("%s%d@example.com", role, f.seq),
		Password: "hashed",
		Role:     role,
		Address:  "42 Test Street",
	}
	require.NoError(t, f.db.Create(u).Error)
	return u
}

func (f *fixture) seedRestaurant(t *testing.T) *entity.Restaurant {
	t.Helper()
	owner := f.seedUser(t, entity.RoleOwner)
	f.seq++
	r := &entity.Restaurant{
		Name:    fmt.Sprintf("Restaurant %d", f.seq),
		Address: "1 Food Lane",
		Rating:  4.2,
		OwnerID: owner.ID,
	}
	require.NoError(t, f.db.Create(r).Error)
	return r
}

func (f *fixture) seedMenu(t *testing.T, restaurantID uint) *entity.FoodMenu {
	t.Helper()
	m := &entity.FoodMenu{Name: "Main Menu", RestaurantID: restaurantID}
	require.NoError(t, f.db.Create(m).Error)
	return m
}

func (f *fixture) seedItem(t *testing.T, menuID uint, name string, price float64, veg string) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{
		Name:        name,
		Price:       price,
		CuisineType: "indian",
		MealType:    "dinner",
		VegOrNonVeg: veg,
		FoodMenuID:  menuID,
	}
	require.NoError(t, f.db.Create(item).Error)
	return item
}

// placeStandardOrder runs the whole checkout path for a fresh customer:
// 2x100 + 1x50 in the cart, placed against a seeded restaurant.
func (f *fixture) placeStandardOrder(t *testing.T) (*entity.User, *entity.Order) {
	t.Helper()

	user := f.seedUser(t, entity.RoleCustomer)
	rest := f.seedRestaurant(t)
	menu := f.seedMenu(t, rest.ID)
	biryani := f.seedItem(t, menu.ID, "Biryani", 100, entity.NonVeg)
	lassi := f.seedItem(t, menu.ID, "Lassi", 50, entity.Veg)

	_, err := f.carts.UpdateCart(user.ID, biryani.ID, 2)
	require.NoError(t, err)
	_, err = f.carts.UpdateCart(user.ID, lassi.ID, 1)
	require.NoError(t, err)

	order, err := f.orders.PlaceOrder(user.ID, rest.ID, "42 Test Street")
	require.NoError(t, err)
	return user, order
}
