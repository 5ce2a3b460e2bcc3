package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"jobportal_backend/internal/models"
)

type SeekerProfileRequest struct {
	Name           string          `json:"name" binding:"required"`
	Location       string          `json:"location"`
	Education      string          `json:"education"`
	PhoneNumber    string          `json:"phone_number"`
	JobPreferences json.RawMessage `json:"job_preferences"`
}

type EmployerProfileRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
}

type SeekerProfileResponse struct {
	ID             uint            `json:"id"`
	UserID         uint            `json:"user_id"`
	Name           string          `json:"name"`
	Location       string          `json:"location"`
	Education      string          `json:"education"`
	PhoneNumber    string          `json:"phone_number"`
	JobPreferences json.RawMessage `json:"job_preferences,omitempty"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type EmployerProfileResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	CompanyName string    `json:"company_name"`
	Website     string    `json:"website"`
	Location    string    `json:"location"`
	Industry    string    `json:"industry"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToSeekerProfileResponse(p *models.JobSeekerProfile) SeekerProfileResponse {
	return SeekerProfileResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		Name:           p.Name,
		Location:       p.Location,
		Education:      p.Education,
		PhoneNumber:    p.PhoneNumber,
		JobPreferences: json.RawMessage(p.JobPreferences),
		UpdatedAt:      p.UpdatedAt,
	}
}

func ToEmployerProfileResponse(p *models.EmployerProfile) EmployerProfileResponse {
	return EmployerProfileResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		CompanyName: p.CompanyName,
		Website:     p.Website,
		Location:    p.Location,
		Industry:    p.Industry,
		Description: p.Description,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *SeekerProfileRequest) ToModel(userID uint) *models.JobSeekerProfile {
	return &models.JobSeekerProfile{
		UserID:         userID,
		Name:           r.Name,
		Location:       r.Location,
		Education:      r.Education,
		PhoneNumber:    r.PhoneNumber,
		JobPreferences: datatypes.JSON(r.JobPreferences),
	}
}

func (r *EmployerProfileRequest) ToModel(userID uint) *models.EmployerProfile {
	return &models.EmployerProfile{
		UserID:      userID,
		CompanyName: r.CompanyName,
		Website:     r.Website,
		Location:    r.Location,
		Industry:    r.Industry,
		Description: r.Description,
	}
}
