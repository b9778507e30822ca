package services

import (
	"math"

	"foodhub/entity"
	"foodhub/pkg/apperr"
	"foodhub/pkg/logger"
	"foodhub/repository"

	"github.com/google/uuid"
)

// amountTolerance is the accepted float drift when comparing payment
// amounts against a computed bill.
const amountTolerance = 0.01

type PaymentService struct {
	Repo     *repository.PaymentRepository
	OrderSvc *OrderService
}

func NewPaymentService(pr *repository.PaymentRepository, os *OrderService) *PaymentService {
	return &PaymentService{Repo: pr, OrderSvc: os}
}

// Record accepts a payment only when the amount matches the computed bill
// total within tolerance. One payment per order.
func (s *PaymentService) Record(orderID uint, amount float64, method string) (*entity.Payment, error) {
	if amount <= 0 {
		return nil, apperr.InvalidArgumentf("amount must be positive")
	}

	bill, err := s.OrderSvc.GetBill(orderID)
	if err != nil {
		return nil, err
	}

	exists, err := s.Repo.ExistsForOrder(orderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.InvalidStatef("order %d is already paid", orderID)
	}

	if math.Abs(amount-bill.Total) > amountTolerance {
		return nil, apperr.InvalidArgumentf(
			"payment amount %.2f does not match bill total %.2f", amount, bill.Total)
	}

	payment := &entity.Payment{
		OrderID:   orderID,
		Amount:    amount,
		Method:    method,
		Status:    entity.PaymentSuccess,
		Reference: uuid.NewString(),
	}
	if err := s.Repo.Create(payment); err != nil {
		return nil, err
	}

	logger.S().Infow("payment recorded",
		"orderId", orderID, "amount", amount, "reference", payment.Reference)
	return payment, nil
}

// Validate reports whether the stored payment for the order matches the
// claimed amount within tolerance and succeeded.
func (s *PaymentService) Validate(orderID uint, claimedAmount float64) (bool, error) {
	payment, err := s.Repo.FindByOrderID(orderID)
	if err != nil {
		return false, err
	}
	ok := math.Abs(payment.Amount-claimedAmount) <= amountTolerance &&
		payment.Status == entity.PaymentSuccess
	return ok, nil
}

func (s *PaymentService) Get(paymentID uint) (*entity.Payment, error) {
	return s.Repo.FindByID(paymentID)
}

func (s *PaymentService) GetByOrder(orderID uint) (*entity.Payment, error) {
	return s.Repo.FindByOrderID(orderID)
}
