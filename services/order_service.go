package services

import (
	"strings"

	"foodhub/entity"
	"foodhub/pkg/apperr"
	"foodhub/pkg/logger"
	"foodhub/repository"

	"gorm.io/gorm"
)

// OrderNotifier pushes a status change to the real-time tracking channel.
// Notification failure never fails the status update.
type OrderNotifier interface {
	NotifyStatus(orderID uint, status string)
}

// statusTransitions encodes the order lifecycle. Missing keys are terminal.
var statusTransitions = map[string][]string{
	entity.StatusPlaced:     {entity.StatusPreparing, entity.StatusCancelled},
	entity.StatusPreparing:  {entity.StatusCooking, entity.StatusCancelled},
	entity.StatusCooking:    {entity.StatusPacked, entity.StatusCancelled},
	entity.StatusPacked:     {entity.StatusDispatched, entity.StatusCancelled},
	entity.StatusDispatched: {entity.StatusDelivered, entity.StatusCancelled},
}

func canTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	CartRepo     *repository.CartRepository
	MenuRepo     *repository.MenuRepository
	UserRepo     *repository.UserRepository
	RestRepo     *repository.RestaurantRepository
	CouponRepo   *repository.CouponRepository
	DeliveryRepo *repository.DeliveryRepository

	Notifier OrderNotifier // optional
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	menuRepo *repository.MenuRepository,
	userRepo *repository.UserRepository,
	restRepo *repository.RestaurantRepository,
	couponRepo *repository.CouponRepository,
	deliveryRepo *repository.DeliveryRepository,
	notifier OrderNotifier,
) *OrderService {
	return &OrderService{
		DB:           db,
		Repo:         repo,
		CartRepo:     cartRepo,
		MenuRepo:     menuRepo,
		UserRepo:     userRepo,
		RestRepo:     restRepo,
		CouponRepo:   couponRepo,
		DeliveryRepo: deliveryRepo,
		Notifier:     notifier,
	}
}

// PlaceOrder turns the user's cart into a PLACED order: snapshots each line's
// name/price/quantity, bumps popularity counters, and clears the cart.
func (s *OrderService) PlaceOrder(userID, restaurantID uint, deliveryAddress string) (*entity.Order, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(deliveryAddress) == "" {
		return nil, apperr.InvalidArgumentf("delivery address must not be blank")
	}
	if _, err := s.RestRepo.FindByID(restaurantID); err != nil {
		return nil, err
	}

	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperr.InvalidStatef("cart is empty for user %d", userID)
	}

	var total float64
	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		menuItem, err := s.MenuRepo.ItemByID(line.MenuItemID)
		if err != nil {
			return nil, err
		}
		items = append(items, entity.OrderItem{
			Name:     menuItem.Name,
			Price:    menuItem.Price,
			Quantity: line.Quantity,
		})
		total += menuItem.Price * float64(line.Quantity)
	}

	order := &entity.Order{
		UserID:          userID,
		RestaurantID:    restaurantID,
		DeliveryAddress: deliveryAddress,
		Status:          entity.StatusPlaced,
		TotalAmount:     total,
		Items:           items,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}
		for _, line := range cart.Items {
			if err := s.MenuRepo.IncrementTimesOrdered(tx, line.MenuItemID, line.Quantity); err != nil {
				return err
			}
		}
		return s.CartRepo.ClearCart(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	logger.S().Infow("order placed",
		"orderId", order.ID, "userId", userID, "total", order.TotalAmount)
	return order, nil
}

// UpdateStatus validates the transition against the lifecycle and notifies
// the tracking channel on success.
func (s *OrderService) UpdateStatus(orderID uint, newStatus string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(newStatus) {
		return nil, apperr.InvalidArgumentf("unknown order status: %s", newStatus)
	}
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if !canTransition(order.Status, newStatus) {
		return nil, apperr.InvalidStatef("cannot move order %d from %s to %s",
			orderID, order.Status, newStatus)
	}

	if err := s.Repo.UpdateStatus(orderID, newStatus); err != nil {
		return nil, err
	}
	order.Status = newStatus

	if s.Notifier != nil {
		s.Notifier.NotifyStatus(orderID, newStatus)
	}
	logger.S().Infow("order status updated", "orderId", orderID, "status", newStatus)
	return order, nil
}

func (s *OrderService) Cancel(orderID uint) (*entity.Order, error) {
	return s.UpdateStatus(orderID, entity.StatusCancelled)
}

// assignableStatuses are the only states in which a rider may be bound.
var assignableStatuses = []string{entity.StatusPlaced, entity.StatusPreparing}

// AssignDelivery binds a rider to an order and records the delivery. The
// order status is left unchanged; the kitchen drives it through the normal
// lifecycle.
func (s *OrderService) AssignDelivery(orderID, deliveryBoyID uint) (*entity.Order, error) {
	rider, err := s.UserRepo.FindByID(deliveryBoyID)
	if err != nil {
		return nil, err
	}
	if rider.Role != entity.RoleRider {
		return nil, apperr.InvalidArgumentf("user %d is not a delivery worker", deliveryBoyID)
	}

	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		return nil, err
	}

	assignable := false
	for _, st := range assignableStatuses {
		if order.Status == st {
			assignable = true
			break
		}
	}
	if !assignable {
		return nil, apperr.InvalidStatef("order %d is not assignable in status %s",
			orderID, order.Status)
	}
	if order.DeliveryBoyID != nil {
		return nil, apperr.InvalidStatef("order %d already has a delivery assignment", orderID)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.AssignDelivery(tx, orderID, deliveryBoyID); err != nil {
			return err
		}
		return s.DeliveryRepo.Create(tx, &entity.Delivery{
			OrderID:       orderID,
			DeliveryBoyID: deliveryBoyID,
			Status:        entity.DeliveryAssigned,
		})
	})
	if err != nil {
		return nil, err
	}

	order.DeliveryBoyID = &deliveryBoyID
	logger.S().Infow("delivery assigned", "orderId", orderID, "deliveryBoyId", deliveryBoyID)
	return order, nil
}

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	return s.Repo.FindByID(orderID)
}

func (s *OrderService) Status(orderID uint) (string, error) {
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		return "", err
	}
	return order.Status, nil
}

func (s *OrderService) ListByUser(userID uint) ([]entity.Order, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return nil, err
	}
	return s.Repo.ListByUser(userID)
}

func (s *OrderService) ListByUserAndRestaurant(userID, restaurantID uint) ([]entity.Order, error) {
	return s.Repo.ListByUserAndRestaurant(userID, restaurantID)
}

// Bill is a computed financial breakdown of an order; never persisted.
type Bill struct {
	OrderID  uint    `json:"orderId"`
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	CGST     float64 `json:"cgst"`
	SGST     float64 `json:"sgst"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

const (
	cgstRate = 0.025
	sgstRate = 0.025
)

// GetBill recomputes the bill from the order's frozen items: discount comes
// off the subtotal, then 5% tax (CGST+SGST) applies to the discounted amount.
func (s *OrderService) GetBill(orderID uint) (*Bill, error) {
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		return nil, err
	}

	var subtotal float64
	for _, item := range order.Items {
		subtotal += item.Price * float64(item.Quantity)
	}

	var discount float64
	if order.CouponCode != nil {
		coupon, err := s.CouponRepo.FindByCode(*order.CouponCode)
		if err != nil {
			return nil, err
		}
		discount = coupon.Discount / 100 * subtotal
		if discount > subtotal {
			discount = subtotal
		}
	}

	taxable := subtotal - discount
	cgst := taxable * cgstRate
	sgst := taxable * sgstRate

	return &Bill{
		OrderID:  orderID,
		Subtotal: subtotal,
		Discount: discount,
		CGST:     cgst,
		SGST:     sgst,
		Tax:      cgst + sgst,
		Total:    taxable + cgst + sgst,
	}, nil
}
