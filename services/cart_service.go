package services

import (
	"foodhub/entity"
	"foodhub/pkg/apperr"
	"foodhub/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
	UserRepo *repository.UserRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository, ur *repository.UserRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr, UserRepo: ur}
}

// UpdateCart adds a menu item to the user's cart, merging quantities for an
// existing line and snapshotting the current unit price.
func (s *CartService) UpdateCart(userID, menuItemID uint, quantity int) (*entity.Cart, error) {
	if quantity <= 0 {
		return nil, apperr.InvalidArgumentf("quantity must be positive")
	}
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return nil, err
	}
	item, err := s.MenuRepo.ItemByID(menuItemID)
	if err != nil {
		return nil, err
	}

	cart, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	line := &entity.CartItem{
		MenuItemID: item.ID,
		Quantity:   quantity,
		Price:      item.Price,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, cart.ID, line)
	})
	if err != nil {
		return nil, err
	}
	return s.CartRepo.GetCartWithItems(userID)
}

func (s *CartService) Get(userID uint) (*entity.Cart, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return nil, err
	}
	return s.CartRepo.GetCartWithItems(userID)
}

func (s *CartService) Clear(userID uint) error {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
