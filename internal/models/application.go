package models

import "time"

// Application links a seeker and a job. A seeker may apply to a job at most
// once, enforced by the composite unique index.
type Application struct {
	BaseModel
	JobID           uint              `gorm:"not null;uniqueIndex:idx_applications_job_seeker" json:"job_id"`
	SeekerID        uint              `gorm:"not null;uniqueIndex:idx_applications_job_seeker" json:"seeker_id"`
	ResumeID        uint              `gorm:"not null" json:"resume_id"`
	Status          ApplicationStatus `gorm:"type:varchar(20);not null;default:'applied'" json:"status"`
	EmployerNotes   *string           `json:"employer_notes"`
	StatusUpdatedAt *time.Time        `json:"status_updated_at"`
	AppliedAt       time.Time         `gorm:"autoCreateTime" json:"applied_at"`

	Answers []ApplicationAnswer `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

// ApplicationAnswer is the seeker's answer to a JobQuestion, captured at
// submission time.
type ApplicationAnswer struct {
	BaseModel
	ApplicationID uint   `gorm:"not null;index" json:"application_id"`
	QuestionID    uint   `gorm:"not null" json:"question_id"`
	AnswerText    string `gorm:"not null" json:"answer_text"`
}

// EmployerQuestion is a follow-up question an employer poses to a specific
// application after reviewing it.
type EmployerQuestion struct {
	BaseModel
	ApplicationID uint      `gorm:"not null;index" json:"application_id"`
	EmployerID    uint      `gorm:"not null" json:"employer_id"`
	QuestionText  string    `gorm:"not null" json:"question_text"`
	AskedAt       time.Time `gorm:"autoCreateTime" json:"asked_at"`
}

// SeekerAnswer is the seeker's single answer to one EmployerQuestion.
type SeekerAnswer struct {
	BaseModel
	QuestionID uint      `gorm:"not null;uniqueIndex:idx_seeker_answers_question_seeker" json:"question_id"`
	SeekerID   uint      `gorm:"not null;uniqueIndex:idx_seeker_answers_question_seeker" json:"seeker_id"`
	AnswerText string    `gorm:"not null" json:"answer_text"`
	AnsweredAt time.Time `gorm:"autoCreateTime" json:"answered_at"`
}
