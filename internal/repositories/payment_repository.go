package repositories

import (
	"gorm.io/gorm"

	"jobportal_backend/internal/models"
)

type PaymentRepository interface {
	// Create inserts a payment record. Rows are immutable after insertion.
	Create(p *models.Payment) error
	ListByUser(userID uint) ([]models.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(p *models.Payment) error {
	return r.db.Create(p).Error
}

func (r *paymentRepository) ListByUser(userID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&payments).Error
	return payments, err
}
