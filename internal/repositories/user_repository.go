package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobportal_backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// CleanupStep is the outcome of one table's delete during account removal.
// Failures are recorded, not swallowed, and never abort the later steps.
type CleanupStep struct {
	Table   string `json:"table"`
	Deleted int64  `json:"deleted"`
	Error   string `json:"error,omitempty"`
}

type UserRepository interface {
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByVerificationToken(token string) (*models.User, error)
	Create(user *models.User) error
	SetPaid(userID uint) error
	SetEmailVerified(userID uint) error
	// DeleteWithOwnedRows removes every row the user owns, each table
	// best-effort, then the user row itself.
	DeleteWithOwnedRows(userID uint) ([]CleanupStep, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByVerificationToken(token string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "verification_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(user).Error
}

func (r *userRepository) SetPaid(userID uint) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).Update("is_paid", true).Error
}

func (r *userRepository) SetEmailVerified(userID uint) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).Update("email_verified", true).Error
}

func (r *userRepository) DeleteWithOwnedRows(userID uint) ([]CleanupStep, error) {
	// Dependents first so no foreign key is left dangling mid-way. Each
	// delete runs on its own; one failure is reported and the rest proceed.
	steps := []CleanupStep{
		r.deleteStep("seeker_answers", r.db.Where("seeker_id = ?", userID).Delete(&models.SeekerAnswer{})),
		r.deleteStep("employer_questions", r.db.Where("employer_id = ?", userID).Delete(&models.EmployerQuestion{})),
		r.deleteStep("applications", r.db.Where("seeker_id = ?", userID).Delete(&models.Application{})),
		r.deleteStep("jobs", r.db.Where("employer_id = ?", userID).Delete(&models.Job{})),
		r.deleteStep("resumes", r.db.Where("user_id = ?", userID).Delete(&models.Resume{})),
		r.deleteStep("notifications", r.db.Where("user_id = ?", userID).Delete(&models.Notification{})),
		r.deleteStep("payments", r.db.Where("user_id = ?", userID).Delete(&models.Payment{})),
		r.deleteStep("job_seeker_profiles", r.db.Where("user_id = ?", userID).Delete(&models.JobSeekerProfile{})),
		r.deleteStep("employer_profiles", r.db.Where("user_id = ?", userID).Delete(&models.EmployerProfile{})),
	}

	if err := r.db.Delete(&models.User{}, userID).Error; err != nil {
		return steps, err
	}
	return steps, nil
}

func (r *userRepository) deleteStep(table string, tx *gorm.DB) CleanupStep {
	step := CleanupStep{Table: table, Deleted: tx.RowsAffected}
	if tx.Error != nil {
		step.Error = tx.Error.Error()
	}
	return step
}
