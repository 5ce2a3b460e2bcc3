package services

import (
	"context"
	"fmt"
	"time"

	"jobportal_backend/internal/config"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/payment"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type PaymentService interface {
	CreateOrder(ctx context.Context, userID uint) (*dto.CreateOrderResponse, error)
	VerifyPayment(userID uint, req *dto.VerifyPaymentRequest) (*dto.PaymentResponse, error)
	History(userID uint) ([]dto.PaymentResponse, error)
}

type PaymentServiceImpl struct {
	gateway     payment.Gateway
	userRepo    repositories.UserRepository
	paymentRepo repositories.PaymentRepository
	cfg         *config.Config
}

func NewPaymentService(
	gateway payment.Gateway,
	userRepo repositories.UserRepository,
	paymentRepo repositories.PaymentRepository,
	cfg *config.Config,
) PaymentService {
	return &PaymentServiceImpl{
		gateway:     gateway,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		cfg:         cfg,
	}
}

// CreateOrder asks the gateway for a fixed-amount activation order.
func (s *PaymentServiceImpl) CreateOrder(ctx context.Context, userID uint) (*dto.CreateOrderResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound("payment", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if user.IsPaid {
		return nil, apperrors.ErrInvalidState("payment", "Account is already activated")
	}

	order, err := s.gateway.CreateOrder(ctx, &payment.OrderRequest{
		Amount:   s.cfg.Payment.ActivationAmount,
		Currency: s.cfg.Payment.Currency,
		Receipt:  fmt.Sprintf("activation_%d_%d", userID, time.Now().UnixMilli()),
		Notes:    map[string]string{"user_id": fmt.Sprintf("%d", userID)},
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    s.cfg.Payment.KeyID,
	}, nil
}

// VerifyPayment checks the gateway signature and activates the account. The
// signature check is the only gate in front of the paid flag.
func (s *PaymentServiceImpl) VerifyPayment(userID uint, req *dto.VerifyPaymentRequest) (*dto.PaymentResponse, error) {
	if !s.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		return nil, apperrors.ValidationError("Invalid signature")
	}

	if err := s.userRepo.SetPaid(userID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	record := &models.Payment{
		UserID:    userID,
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Status:    models.PaymentStatusCompleted,
		Amount:    s.cfg.Payment.ActivationAmount,
		Currency:  s.cfg.Payment.Currency,
	}
	if err := s.paymentRepo.Create(record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.ToPaymentResponse(record)
	return &resp, nil
}

func (s *PaymentServiceImpl) History(userID uint) ([]dto.PaymentResponse, error) {
	payments, err := s.paymentRepo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		resp = append(resp, dto.ToPaymentResponse(&payments[i]))
	}
	return resp, nil
}
