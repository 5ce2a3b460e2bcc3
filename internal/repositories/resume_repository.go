package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobportal_backend/internal/models"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	// Create inserts the resume; the user's first resume becomes default.
	Create(resume *models.Resume) error
	FindByIDForUser(id, userID uint) (*models.Resume, error)
	ListByUser(userID uint) ([]models.Resume, error)
	CountOthers(userID, excludeID uint) (int64, error)
	// SetDefault clears the flag on every resume of the user and sets it on
	// the target, atomically.
	SetDefault(userID, id uint) error
	// DeleteAndPromote removes the resume and, when it was the default,
	// promotes the most recently created remaining one, atomically.
	DeleteAndPromote(resume *models.Resume) error
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Create(resume *models.Resume) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Resume{}).Where("user_id = ?", resume.UserID).Count(&count).Error; err != nil {
			return err
		}
		resume.IsDefault = count == 0
		return tx.Create(resume).Error
	})
}

func (r *resumeRepository) FindByIDForUser(id, userID uint) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.First(&resume, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepository) ListByUser(userID uint) ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&resumes).Error
	return resumes, err
}

func (r *resumeRepository) CountOthers(userID, excludeID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Resume{}).
		Where("user_id = ? AND id != ?", userID, excludeID).
		Count(&count).Error
	return count, err
}

func (r *resumeRepository) SetDefault(userID, id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Resume{}).Where("user_id = ?", userID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Resume{}).Where("id = ? AND user_id = ?", id, userID).
			Update("is_default", true).Error
	})
}

func (r *resumeRepository) DeleteAndPromote(resume *models.Resume) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Resume{}, resume.ID).Error; err != nil {
			return err
		}

		if !resume.IsDefault {
			return nil
		}

		var latest models.Resume
		err := tx.Where("user_id = ?", resume.UserID).
			Order("created_at DESC").First(&latest).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Model(&models.Resume{}).Where("id = ?", latest.ID).
			Update("is_default", true).Error
	})
}
