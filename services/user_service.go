package services

import (
	"strings"

	"foodhub/entity"
	"foodhub/pkg/apperr"
	"foodhub/pkg/logger"
	"foodhub/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserService covers admin-side account management plus the per-user
// preference features (liked menu items, location).
type UserService struct {
	UserRepo *repository.UserRepository
	MenuRepo *repository.MenuRepository
}

func NewUserService(ur *repository.UserRepository, mr *repository.MenuRepository) *UserService {
	return &UserService{UserRepo: ur, MenuRepo: mr}
}

type CreateUserIn struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phoneNumber"`
	Address   string `json:"address"`
	Role      string `json:"role" binding:"required"`
}

func (s *UserService) Create(in *CreateUserIn) (*entity.User, error) {
	if !entity.ValidRole(in.Role) {
		return nil, apperr.InvalidArgumentf("invalid role: %s", in.Role)
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.InvalidArgumentf("email already exists: %s", email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.Phone,
		Address:     in.Address,
		Role:        in.Role,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	logger.S().Infow("user created", "userId", user.ID, "role", user.Role)
	return user, nil
}

func (s *UserService) Get(userID uint) (*entity.User, error) {
	return s.UserRepo.FindByID(userID)
}

type UpdateUserIn struct {
	FirstName *string  `json:"firstName"`
	LastName  *string  `json:"lastName"`
	Phone     *string  `json:"phoneNumber"`
	Address   *string  `json:"address"`
	Role      *string  `json:"role"`
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

func (s *UserService) Update(userID uint, in *UpdateUserIn) (*entity.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, apperr.InvalidArgumentf("invalid role: %s", *in.Role)
		}
		user.Role = *in.Role
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Phone != nil {
		user.PhoneNumber = *in.Phone
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	if in.Longitude != nil {
		user.Longitude = in.Longitude
	}
	if in.Latitude != nil {
		user.Latitude = in.Latitude
	}

	if err := s.UserRepo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(userID uint) error {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return err
	}
	return s.UserRepo.Delete(userID)
}

// LikeMenuItem records a like; liking twice is a no-op.
func (s *UserService) LikeMenuItem(userID, menuItemID uint) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}
	item, err := s.MenuRepo.ItemByID(menuItemID)
	if err != nil {
		return err
	}

	liked, err := s.UserRepo.LikedMenuItems(userID)
	if err != nil {
		return err
	}
	for _, l := range liked {
		if l.ID == menuItemID {
			return nil
		}
	}
	return s.UserRepo.AddLikedMenuItem(user, item)
}

func (s *UserService) LikedMenuItems(userID uint) ([]entity.MenuItem, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return nil, err
	}
	return s.UserRepo.LikedMenuItems(userID)
}
