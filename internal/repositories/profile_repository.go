package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobportal_backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindSeekerByUserID(userID uint) (*models.JobSeekerProfile, error)
	UpsertSeeker(profile *models.JobSeekerProfile) error
	FindEmployerByUserID(userID uint) (*models.EmployerProfile, error)
	UpsertEmployer(profile *models.EmployerProfile) error
	SeekerHasProfile(userID uint) (bool, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindSeekerByUserID(userID uint) (*models.JobSeekerProfile, error) {
	var profile models.JobSeekerProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpsertSeeker updates the existing profile row for the user or creates one.
// The UserID unique index keeps at most one profile per user.
func (r *profileRepository) UpsertSeeker(profile *models.JobSeekerProfile) error {
	var existing models.JobSeekerProfile
	err := r.db.First(&existing, "user_id = ?", profile.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(profile).Error
	}
	if err != nil {
		return err
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.Save(profile).Error
}

func (r *profileRepository) FindEmployerByUserID(userID uint) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) UpsertEmployer(profile *models.EmployerProfile) error {
	var existing models.EmployerProfile
	err := r.db.First(&existing, "user_id = ?", profile.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(profile).Error
	}
	if err != nil {
		return err
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.Save(profile).Error
}

func (r *profileRepository) SeekerHasProfile(userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.JobSeekerProfile{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}
