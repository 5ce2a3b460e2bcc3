package models

// Payment records a completed activation checkout. Rows are written once after
// signature verification and never updated.
type Payment struct {
	BaseModel
	UserID    uint          `gorm:"not null;index" json:"user_id"`
	OrderID   string        `gorm:"not null" json:"order_id"`
	PaymentID string        `gorm:"not null" json:"payment_id"`
	Status    PaymentStatus `gorm:"type:varchar(20);not null" json:"status"`
	Amount    int64         `gorm:"not null" json:"amount"`
	Currency  string        `gorm:"type:varchar(10);not null" json:"currency"`
}
