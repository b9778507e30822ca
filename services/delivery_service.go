package services

import (
	"time"

	"foodhub/entity"
	"foodhub/pkg/apperr"
	"foodhub/repository"
)

type DeliveryService struct {
	Repo     *repository.DeliveryRepository
	UserRepo *repository.UserRepository
}

func NewDeliveryService(dr *repository.DeliveryRepository, ur *repository.UserRepository) *DeliveryService {
	return &DeliveryService{Repo: dr, UserRepo: ur}
}

func (s *DeliveryService) Get(id uint) (*entity.Delivery, error) {
	return s.Repo.FindByID(id)
}

func (s *DeliveryService) GetByOrder(orderID uint) (*entity.Delivery, error) {
	return s.Repo.FindByOrderID(orderID)
}

func (s *DeliveryService) ListByRider(deliveryBoyID uint) ([]entity.Delivery, error) {
	rider, err := s.UserRepo.FindByID(deliveryBoyID)
	if err != nil {
		return nil, err
	}
	if rider.Role != entity.RoleRider {
		return nil, apperr.InvalidArgumentf("user %d is not a delivery worker", deliveryBoyID)
	}
	return s.Repo.ListByDeliveryBoy(deliveryBoyID)
}

type CompleteDeliveryIn struct {
	Feedback string   `json:"feedback"`
	Rating   *float64 `json:"rating"`
}

// Complete closes a delivery record with the drop-off time and optional
// customer feedback.
func (s *DeliveryService) Complete(deliveryID uint, in *CompleteDeliveryIn) (*entity.Delivery, error) {
	d, err := s.Repo.FindByID(deliveryID)
	if err != nil {
		return nil, err
	}
	if d.Status == entity.DeliveryCompleted {
		return nil, apperr.InvalidStatef("delivery %d is already completed", deliveryID)
	}
	if in.Rating != nil && (*in.Rating < 0 || *in.Rating > 5) {
		return nil, apperr.InvalidArgumentf("rating must be between 0 and 5")
	}

	now := time.Now()
	d.Status = entity.DeliveryCompleted
	d.DeliveryTime = &now
	d.Feedback = in.Feedback
	d.Rating = in.Rating

	if err := s.Repo.Save(d); err != nil {
		return nil, err
	}
	return d, nil
}
