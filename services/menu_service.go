package services

import (
	"foodhub/entity"
	"foodhub/pkg/apperr"
	"foodhub/repository"
)

type MenuService struct {
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
	UserRepo *repository.UserRepository
}

func NewMenuService(mr *repository.MenuRepository, rr *repository.RestaurantRepository, ur *repository.UserRepository) *MenuService {
	return &MenuService{Repo: mr, RestRepo: rr, UserRepo: ur}
}

func (s *MenuService) CreateMenu(restaurantID uint, name string) (*entity.FoodMenu, error) {
	if _, err := s.RestRepo.FindByID(restaurantID); err != nil {
		return nil, err
	}
	menu := &entity.FoodMenu{Name: name, RestaurantID: restaurantID}
	if err := s.Repo.CreateMenu(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) MenuByRestaurant(restaurantID uint) (*entity.FoodMenu, error) {
	if _, err := s.RestRepo.FindByID(restaurantID); err != nil {
		return nil, err
	}
	return s.Repo.MenuByRestaurant(restaurantID)
}

type CreateMenuItemIn struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	CuisineType string  `json:"cuisineType" binding:"required"`
	MealType    string  `json:"mealType" binding:"required"`
	VegOrNonVeg string  `json:"vegOrNonVeg"`
	FoodMenuID  uint    `json:"foodMenuId" binding:"required"`
}

func (s *MenuService) CreateItem(in *CreateMenuItemIn) (*entity.MenuItem, error) {
	if in.Price <= 0 {
		return nil, apperr.InvalidArgumentf("price must be positive")
	}
	if in.VegOrNonVeg != "" && in.VegOrNonVeg != entity.Veg && in.VegOrNonVeg != entity.NonVeg {
		return nil, apperr.InvalidArgumentf("vegOrNonVeg must be %s or %s", entity.Veg, entity.NonVeg)
	}
	if _, err := s.Repo.FindMenuByID(in.FoodMenuID); err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		Name:        in.Name,
		Price:       in.Price,
		CuisineType: in.CuisineType,
		MealType:    in.MealType,
		VegOrNonVeg: in.VegOrNonVeg,
		FoodMenuID:  in.FoodMenuID,
	}
	if err := s.Repo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Item(id uint) (*entity.MenuItem, error) {
	return s.Repo.ItemByID(id)
}

func (s *MenuService) ItemsByCuisine(restaurantID uint, cuisine string) ([]entity.MenuItem, error) {
	if _, err := s.RestRepo.FindByID(restaurantID); err != nil {
		return nil, err
	}
	return s.Repo.ItemsByCuisine(restaurantID, cuisine)
}

func (s *MenuService) ItemsByMealType(restaurantID uint, mealType string) ([]entity.MenuItem, error) {
	if _, err := s.RestRepo.FindByID(restaurantID); err != nil {
		return nil, err
	}
	return s.Repo.ItemsByMealType(restaurantID, mealType)
}

type AddReviewIn struct {
	Comment string  `json:"comment"`
	Rating  float64 `json:"rating" binding:"required"`
}

func (s *MenuService) AddReview(userID, menuItemID uint, in *AddReviewIn) (*entity.Review, error) {
	if in.Rating < 0 || in.Rating > 5 {
		return nil, apperr.InvalidArgumentf("rating must be between 0 and 5")
	}
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return nil, err
	}
	if _, err := s.Repo.ItemByID(menuItemID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		Comment:    in.Comment,
		Rating:     in.Rating,
		MenuItemID: menuItemID,
		UserID:     userID,
	}
	if err := s.Repo.AddReview(review); err != nil {
		return nil, err
	}
	return review, nil
}
