package models

import "gorm.io/datatypes"

type JobSeekerProfile struct {
	BaseModel
	UserID      uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	Location    string `json:"location"`
	Education   string `json:"education"`
	PhoneNumber string `gorm:"type:varchar(50)" json:"phone_number"`
	// Structured document: domains, skills, job types, preferred locations,
	// remote flag, salary range.
	JobPreferences datatypes.JSON `json:"job_preferences"`
}

type EmployerProfile struct {
	BaseModel
	UserID      uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName string `gorm:"not null" json:"company_name"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
}
