package dto

import (
	"time"

	"jobportal_backend/internal/models"
)

type AnswerInput struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	AnswerText string `json:"answer_text"`
}

type ApplyRequest struct {
	ResumeID *uint         `json:"resume_id"`
	Answers  []AnswerInput `json:"answers" binding:"omitempty,dive"`
}

type UpdateStatusRequest struct {
	Status string  `json:"status" binding:"required,review_status"`
	Notes  *string `json:"notes"`
}

type AskQuestionRequest struct {
	QuestionText string `json:"question_text" binding:"required"`
}

type AnswerQuestionRequest struct {
	AnswerText string `json:"answer_text" binding:"required"`
}

type ApplicationAnswerResponse struct {
	QuestionID uint   `json:"question_id"`
	AnswerText string `json:"answer_text"`
}

type ApplicationResponse struct {
	ID              uint                       `json:"id"`
	JobID           uint                       `json:"job_id"`
	SeekerID        uint                       `json:"seeker_id"`
	ResumeID        uint                       `json:"resume_id"`
	Status          models.ApplicationStatus   `json:"status"`
	EmployerNotes   *string                    `json:"employer_notes,omitempty"`
	StatusUpdatedAt *time.Time                 `json:"status_updated_at,omitempty"`
	AppliedAt       time.Time                  `json:"applied_at"`
	Answers         []ApplicationAnswerResponse `json:"answers,omitempty"`
}

// SeekerApplicationResponse is the seeker's view of one of their applications.
type SeekerApplicationResponse struct {
	ApplicationResponse
	JobTitle    string `json:"job_title"`
	CompanyName string `json:"company_name,omitempty"`
}

// EmployerApplicationResponse is the employer's view of an application to
// one of their jobs.
type EmployerApplicationResponse struct {
	ApplicationResponse
	JobTitle       string `json:"job_title"`
	ApplicantEmail string `json:"applicant_email"`
	ApplicantPhone string `json:"applicant_phone,omitempty"`
}

type EmployerQuestionResponse struct {
	ID           uint      `json:"id"`
	ApplicationID uint     `json:"application_id"`
	QuestionText string    `json:"question_text"`
	AskedAt      time.Time `json:"asked_at"`
	JobTitle     string    `json:"job_title,omitempty"`
	AnswerText   *string   `json:"answer_text,omitempty"`
}

func ToApplicationResponse(a *models.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:              a.ID,
		JobID:           a.JobID,
		SeekerID:        a.SeekerID,
		ResumeID:        a.ResumeID,
		Status:          a.Status,
		EmployerNotes:   a.EmployerNotes,
		StatusUpdatedAt: a.StatusUpdatedAt,
		AppliedAt:       a.AppliedAt,
	}
}
