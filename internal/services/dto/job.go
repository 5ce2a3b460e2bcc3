package dto

import (
	"time"

	"jobportal_backend/internal/models"
)

type JobQuestionRequest struct {
	QuestionText string `json:"question_text"`
	IsRequired   bool   `json:"is_required"`
}

type CreateJobRequest struct {
	Title              string               `json:"title" binding:"required"`
	Description        string               `json:"description" binding:"required"`
	ContactEmail       string               `json:"contact_email" binding:"required,email"`
	ExperienceRequired string               `json:"experience_required"`
	Salary             string               `json:"salary"`
	Location           string               `json:"location"`
	Country            string               `json:"country"`
	IsRemote           bool                 `json:"is_remote"`
	JobType            string               `json:"job_type"`
	Domain             string               `json:"domain"`
	Questions          []JobQuestionRequest `json:"questions" binding:"omitempty,dive"`
}

type UpdateJobRequest struct {
	Title              string `json:"title" binding:"required"`
	Description        string `json:"description" binding:"required"`
	ContactEmail       string `json:"contact_email" binding:"required,email"`
	ExperienceRequired string `json:"experience_required"`
	Salary             string `json:"salary"`
	Location           string `json:"location"`
	Country            string `json:"country"`
	IsRemote           bool   `json:"is_remote"`
	JobType            string `json:"job_type"`
	Domain             string `json:"domain"`
}

// JobFilterRequest carries the listing query parameters. MinSalary is matched
// against the first run of digits in the stored salary text.
type JobFilterRequest struct {
	Query      string `form:"q"`
	Location   string `form:"location"`
	RemoteOnly bool   `form:"remote"`
	JobType    string `form:"job_type"`
	Domain     string `form:"domain"`
	Currency   string `form:"currency"`
	MinSalary  *int   `form:"min_salary"`
	Page       int    `form:"page,default=1"`
}

type JobQuestionResponse struct {
	ID            uint   `json:"id"`
	QuestionText  string `json:"question_text"`
	IsRequired    bool   `json:"is_required"`
	QuestionOrder int    `json:"question_order"`
}

type JobResponse struct {
	ID                 uint                  `json:"id"`
	EmployerID         uint                  `json:"employer_id"`
	Title              string                `json:"title"`
	Description        string                `json:"description"`
	ContactEmail       string                `json:"contact_email"`
	ExperienceRequired string                `json:"experience_required"`
	Salary             string                `json:"salary"`
	Location           string                `json:"location"`
	Country            string                `json:"country"`
	IsRemote           bool                  `json:"is_remote"`
	JobType            string                `json:"job_type"`
	Domain             string                `json:"domain"`
	IsOpen             bool                  `json:"is_open"`
	PostedAt           time.Time             `json:"posted_at"`
	CompanyName        string                `json:"company_name,omitempty"`
	Questions          []JobQuestionResponse `json:"questions,omitempty"`
}

type JobListResponse struct {
	Jobs       []JobResponse `json:"jobs"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalCount int           `json:"total_count"`
	TotalPages int           `json:"total_pages"`
}

type EmployerJobResponse struct {
	JobResponse
	ApplicationCount int64 `json:"application_count"`
}

func ToJobResponse(j *models.Job) JobResponse {
	resp := JobResponse{
		ID:                 j.ID,
		EmployerID:         j.EmployerID,
		Title:              j.Title,
		Description:        j.Description,
		ContactEmail:       j.ContactEmail,
		ExperienceRequired: j.ExperienceRequired,
		Salary:             j.Salary,
		Location:           j.Location,
		Country:            j.Country,
		IsRemote:           j.IsRemote,
		JobType:            j.JobType,
		Domain:             j.Domain,
		IsOpen:             j.IsOpen,
		PostedAt:           j.PostedAt,
	}
	for _, q := range j.Questions {
		resp.Questions = append(resp.Questions, ToJobQuestionResponse(&q))
	}
	return resp
}

func ToJobQuestionResponse(q *models.JobQuestion) JobQuestionResponse {
	return JobQuestionResponse{
		ID:            q.ID,
		QuestionText:  q.QuestionText,
		IsRequired:    q.IsRequired,
		QuestionOrder: q.QuestionOrder,
	}
}
