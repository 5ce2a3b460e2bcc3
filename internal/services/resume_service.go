package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/internal/storage"
	"jobportal_backend/pkg/apperrors"
)

const resumeContentType = "application/pdf"

type ResumeUpload struct {
	Title    string
	FileName string
	Size     int64
	Reader   io.Reader
}

type ResumeService interface {
	Upload(ctx context.Context, userID uint, upload *ResumeUpload) (*dto.ResumeResponse, error)
	List(userID uint) ([]dto.ResumeResponse, error)
	SetDefault(userID, resumeID uint) error
	Delete(ctx context.Context, userID, resumeID uint) error
}

type ResumeServiceImpl struct {
	resumeRepo repositories.ResumeRepository
	store      storage.Storage
	maxSize    int64
}

func NewResumeService(resumeRepo repositories.ResumeRepository, store storage.Storage, maxSize int64) ResumeService {
	return &ResumeServiceImpl{resumeRepo: resumeRepo, store: store, maxSize: maxSize}
}

// Upload validates and stores a PDF resume. The first resume a user uploads
// becomes their default.
func (s *ResumeServiceImpl) Upload(ctx context.Context, userID uint, upload *ResumeUpload) (*dto.ResumeResponse, error) {
	if !strings.EqualFold(filepath.Ext(upload.FileName), ".pdf") {
		return nil, apperrors.ValidationError("resume must be a PDF file")
	}
	if upload.Size > s.maxSize {
		return nil, apperrors.ValidationError(
			fmt.Sprintf("resume must not exceed %d MB", s.maxSize/(1024*1024)))
	}

	key := resumeKey(userID, upload.FileName)
	if err := s.store.Save(ctx, key, upload.Reader, resumeContentType); err != nil {
		return nil, apperrors.InternalError(err)
	}
	url, err := s.store.GetURL(ctx, key)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	title := strings.TrimSpace(upload.Title)
	if title == "" {
		title = strings.TrimSuffix(upload.FileName, filepath.Ext(upload.FileName))
	}

	resume := &models.Resume{
		UserID:   userID,
		Title:    title,
		FileURL:  url,
		FileName: upload.FileName,
		FileSize: upload.Size,
	}
	if err := s.resumeRepo.Create(resume); err != nil {
		// The blob is orphaned if this fails; remove it.
		if derr := s.store.Delete(ctx, key); derr != nil {
			logger.Warn("failed to remove orphaned resume blob", "key", key, "error", derr)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.ToResumeResponse(resume)
	return &resp, nil
}

func (s *ResumeServiceImpl) List(userID uint) ([]dto.ResumeResponse, error) {
	resumes, err := s.resumeRepo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := make([]dto.ResumeResponse, 0, len(resumes))
	for i := range resumes {
		resp = append(resp, dto.ToResumeResponse(&resumes[i]))
	}
	return resp, nil
}

func (s *ResumeServiceImpl) SetDefault(userID, resumeID uint) error {
	if _, err := s.resumeRepo.FindByIDForUser(resumeID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrResumeNotFound) {
			return apperrors.ErrNotFound("resume", "Resume not found")
		}
		return apperrors.InternalError(err)
	}
	if err := s.resumeRepo.SetDefault(userID, resumeID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Delete removes a resume. A seeker's sole default resume cannot be removed;
// when a non-sole default is removed the newest remaining resume takes over.
func (s *ResumeServiceImpl) Delete(ctx context.Context, userID, resumeID uint) error {
	resume, err := s.resumeRepo.FindByIDForUser(resumeID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrResumeNotFound) {
			return apperrors.ErrNotFound("resume", "Resume not found")
		}
		return apperrors.InternalError(err)
	}

	others, err := s.resumeRepo.CountOthers(userID, resumeID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if resume.IsDefault && others == 0 {
		return apperrors.ErrConflict("resume", "Cannot delete the only default resume")
	}

	if err := s.resumeRepo.DeleteAndPromote(resume); err != nil {
		return apperrors.InternalError(err)
	}

	// Blob removal is best-effort once the row is gone.
	if key := resumeKeyFromURL(resume.FileURL); key != "" {
		if err := s.store.Delete(ctx, key); err != nil {
			logger.Warn("failed to delete resume blob", "key", key, "error", err)
		}
	}
	return nil
}

// resumeKey builds the blob key from the owner, the current time and the
// original file name.
func resumeKey(userID uint, fileName string) string {
	return fmt.Sprintf("resumes/%d-%d-%s", userID, time.Now().UnixMilli(), sanitizeFileName(fileName))
}

// resumeKeyFromURL recovers the blob key from a stored URL. Keys always live
// under the resumes/ prefix.
func resumeKeyFromURL(url string) string {
	idx := strings.Index(url, "resumes/")
	if idx < 0 {
		return ""
	}
	return url[idx:]
}

func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
