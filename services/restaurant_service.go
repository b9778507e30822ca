package services

import (
	"math"

	"foodhub/entity"
	"foodhub/pkg/apperr"
	"foodhub/repository"
)

const earthRadiusKm = 6371.0

type RestaurantService struct {
	Repo     *repository.RestaurantRepository
	UserRepo *repository.UserRepository
}

func NewRestaurantService(r *repository.RestaurantRepository, ur *repository.UserRepository) *RestaurantService {
	return &RestaurantService{Repo: r, UserRepo: ur}
}

type CreateRestaurantIn struct {
	Name      string  `json:"name" binding:"required"`
	Address   string  `json:"address" binding:"required"`
	Rating    float64 `json:"rating"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	OwnerID   uint    `json:"ownerId" binding:"required"`
}

func (s *RestaurantService) Create(in *CreateRestaurantIn) (*entity.Restaurant, error) {
	owner, err := s.UserRepo.FindByID(in.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner.Role != entity.RoleOwner {
		return nil, apperr.InvalidArgumentf("user %d is not a restaurant owner", in.OwnerID)
	}
	if in.Rating < 0 || in.Rating > 5 {
		return nil, apperr.InvalidArgumentf("rating must be between 0 and 5")
	}

	rest := &entity.Restaurant{
		Name:      in.Name,
		Address:   in.Address,
		Rating:    in.Rating,
		Longitude: in.Longitude,
		Latitude:  in.Latitude,
		OwnerID:   in.OwnerID,
	}
	if err := s.Repo.Create(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	return s.Repo.FindByID(id)
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.Repo.List()
}

func (s *RestaurantService) SearchByName(name string) ([]entity.Restaurant, error) {
	return s.Repo.SearchByName(name)
}

func (s *RestaurantService) SearchByCity(city string) ([]entity.Restaurant, error) {
	return s.Repo.SearchByAddress(city)
}

// Nearby returns restaurants rated at least minRating within maxKm of the
// user's stored location.
func (s *RestaurantService) Nearby(userID uint, minRating, maxKm float64) ([]entity.Restaurant, error) {
	if minRating < 0 || minRating > 5 {
		return nil, apperr.InvalidArgumentf("rating must be between 0 and 5")
	}
	if maxKm <= 0 {
		return nil, apperr.InvalidArgumentf("distance must be greater than 0")
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if !user.HasLocation() {
		return nil, apperr.InvalidArgumentf("user location not set")
	}

	candidates, err := s.Repo.ListByMinRating(minRating)
	if err != nil {
		return nil, err
	}

	out := make([]entity.Restaurant, 0, len(candidates))
	for _, r := range candidates {
		d := haversineKm(*user.Latitude, *user.Longitude, r.Latitude, r.Longitude)
		if d <= maxKm {
			out = append(out, r)
		}
	}
	return out, nil
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
