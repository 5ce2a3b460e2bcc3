package models

type Resume struct {
	BaseModel
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	Title     string `gorm:"not null" json:"title"`
	FileURL   string `gorm:"not null" json:"file_url"`
	FileName  string `gorm:"not null" json:"file_name"`
	FileSize  int64  `json:"file_size"`
	IsDefault bool   `gorm:"default:false" json:"is_default"`
}
