package dto

import (
	"time"

	"jobportal_backend/internal/models"
)

type ResumeResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Title     string    `json:"title"`
	FileURL   string    `json:"file_url"`
	FileName  string    `json:"file_name"`
	FileSize  int64     `json:"file_size"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

func ToResumeResponse(r *models.Resume) ResumeResponse {
	return ResumeResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		FileURL:   r.FileURL,
		FileName:  r.FileName,
		FileSize:  r.FileSize,
		IsDefault: r.IsDefault,
		CreatedAt: r.CreatedAt,
	}
}
