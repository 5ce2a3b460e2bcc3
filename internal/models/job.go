package models

import "time"

type Job struct {
	BaseModel
	EmployerID         uint      `gorm:"not null;index" json:"employer_id"`
	Title              string    `gorm:"not null" json:"title"`
	Description        string    `gorm:"not null" json:"description"`
	ContactEmail       string    `gorm:"not null" json:"contact_email"`
	ExperienceRequired string    `json:"experience_required"`
	Salary             string    `json:"salary"`
	Location           string    `json:"location"`
	Country            string    `json:"country"`
	IsRemote           bool      `gorm:"default:false" json:"is_remote"`
	JobType            string    `json:"job_type"`
	Domain             string    `json:"domain"`
	IsOpen             bool      `gorm:"default:true" json:"is_open"`
	PostedAt           time.Time `gorm:"autoCreateTime" json:"posted_at"`

	Questions []JobQuestion `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

// JobQuestion is a screening question attached to a job, answered at apply time.
type JobQuestion struct {
	BaseModel
	JobID         uint   `gorm:"not null;index" json:"job_id"`
	QuestionText  string `gorm:"not null" json:"question_text"`
	IsRequired    bool   `gorm:"default:false" json:"is_required"`
	QuestionOrder int    `gorm:"not null" json:"question_order"`
}
