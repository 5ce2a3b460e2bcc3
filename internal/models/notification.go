package models

// Notification is an in-app message created as a side effect of workflow
// events. The recipient may only ever mark it read.
type Notification struct {
	BaseModel
	UserID               uint             `gorm:"not null;index" json:"user_id"`
	Title                string           `gorm:"not null" json:"title"`
	Message              string           `gorm:"not null" json:"message"`
	Type                 NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	IsRead               bool             `gorm:"default:false" json:"is_read"`
	RelatedApplicationID *uint            `json:"related_application_id"`
}
