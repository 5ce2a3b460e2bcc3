package dto

import (
	"time"

	"jobportal_backend/internal/models"
)

// CreateOrderResponse carries what the frontend checkout widget needs to
// open the payment dialog.
type CreateOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

type PaymentResponse struct {
	ID        uint                 `json:"id"`
	OrderID   string               `json:"order_id"`
	PaymentID string               `json:"payment_id,omitempty"`
	Status    models.PaymentStatus `json:"status"`
	Amount    int64                `json:"amount"`
	Currency  string               `json:"currency"`
	CreatedAt time.Time            `json:"created_at"`
}

func ToPaymentResponse(p *models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		OrderID:   p.OrderID,
		PaymentID: p.PaymentID,
		Status:    p.Status,
		Amount:    p.Amount,
		Currency:  p.Currency,
		CreatedAt: p.CreatedAt,
	}
}
