package models

type User struct {
	BaseModel
	Email             string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string   `gorm:"not null" json:"-"`
	Role              UserRole `gorm:"type:varchar(20);not null" json:"role"`
	IsPaid            bool     `gorm:"default:false" json:"is_paid"`
	EmailVerified     bool     `gorm:"default:false" json:"email_verified"`
	VerificationToken string   `json:"-"`

	// Relations
	SeekerProfile   *JobSeekerProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"seeker_profile,omitempty"`
	EmployerProfile *EmployerProfile  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"employer_profile,omitempty"`
	Resumes         []Resume          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Notifications   []Notification    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
