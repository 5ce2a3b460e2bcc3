package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jobportal_backend/internal/models"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrQuestionNotFound    = errors.New("question not found")
)

// ApplicationDetail is an application joined with its job and applicant
// contact data, scoped to the owning employer.
type ApplicationDetail struct {
	models.Application
	JobTitle       string `json:"job_title"`
	EmployerID     uint   `json:"employer_id"`
	ApplicantEmail string `json:"applicant_email"`
	ApplicantPhone string `json:"applicant_phone"`
}

// SeekerApplication is an application row as the seeker sees it.
type SeekerApplication struct {
	models.Application
	JobTitle    string `json:"job_title"`
	CompanyName string `json:"company_name"`
}

// EmployerQuestionDetail is a follow-up question joined with the application
// and job it belongs to, scoped to the answering seeker.
type EmployerQuestionDetail struct {
	models.EmployerQuestion
	JobTitle string `json:"job_title"`
	SeekerID uint   `json:"seeker_id"`
}

type ApplicationRepository interface {
	Create(app *models.Application) error
	ExistsForJobAndSeeker(jobID, seekerID uint) (bool, error)
	FindDetailForEmployer(appID, employerID uint) (*ApplicationDetail, error)
	UpdateStatus(appID uint, status models.ApplicationStatus, notes *string) error
	CreateAnswer(answer *models.ApplicationAnswer) error
	AnswersByApplication(appID uint) ([]models.ApplicationAnswer, error)
	ListBySeeker(seekerID uint) ([]SeekerApplication, error)
	ListByJob(jobID uint) ([]models.Application, error)

	CreateEmployerQuestion(q *models.EmployerQuestion) error
	FindEmployerQuestionForSeeker(questionID, seekerID uint) (*EmployerQuestionDetail, error)
	SeekerAnswerExists(questionID, seekerID uint) (bool, error)
	CreateSeekerAnswer(answer *models.SeekerAnswer) error
	EmployerQuestionsByApplication(appID uint) ([]models.EmployerQuestion, error)
	SeekerAnswersByQuestionIDs(questionIDs []uint) ([]models.SeekerAnswer, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(app *models.Application) error {
	return r.db.Create(app).Error
}

func (r *applicationRepository) ExistsForJobAndSeeker(jobID, seekerID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("job_id = ? AND seeker_id = ?", jobID, seekerID).
		Count(&count).Error
	return count > 0, err
}

func (r *applicationRepository) FindDetailForEmployer(appID, employerID uint) (*ApplicationDetail, error) {
	var detail ApplicationDetail
	err := r.db.Table("applications").
		Select(`applications.*, jobs.title AS job_title, jobs.employer_id,
			users.email AS applicant_email, job_seeker_profiles.phone_number AS applicant_phone`).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Joins("JOIN users ON users.id = applications.seeker_id").
		Joins("LEFT JOIN job_seeker_profiles ON job_seeker_profiles.user_id = applications.seeker_id").
		Where("applications.id = ? AND jobs.employer_id = ?", appID, employerID).
		Scan(&detail).Error
	if err != nil {
		return nil, err
	}
	if detail.ID == 0 {
		return nil, ErrApplicationNotFound
	}
	return &detail, nil
}

func (r *applicationRepository) UpdateStatus(appID uint, status models.ApplicationStatus, notes *string) error {
	now := time.Now()
	return r.db.Model(&models.Application{}).Where("id = ?", appID).Updates(map[string]interface{}{
		"status":            status,
		"employer_notes":    notes,
		"status_updated_at": &now,
	}).Error
}

func (r *applicationRepository) CreateAnswer(answer *models.ApplicationAnswer) error {
	return r.db.Create(answer).Error
}

func (r *applicationRepository) AnswersByApplication(appID uint) ([]models.ApplicationAnswer, error) {
	var answers []models.ApplicationAnswer
	err := r.db.Where("application_id = ?", appID).Find(&answers).Error
	return answers, err
}

func (r *applicationRepository) ListBySeeker(seekerID uint) ([]SeekerApplication, error) {
	var apps []SeekerApplication
	err := r.db.Table("applications").
		Select("applications.*, jobs.title AS job_title, employer_profiles.company_name").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Joins("LEFT JOIN employer_profiles ON employer_profiles.user_id = jobs.employer_id").
		Where("applications.seeker_id = ?", seekerID).
		Order("applications.applied_at DESC").
		Scan(&apps).Error
	return apps, err
}

func (r *applicationRepository) ListByJob(jobID uint) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Where("job_id = ?", jobID).Order("applied_at DESC").Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) CreateEmployerQuestion(q *models.EmployerQuestion) error {
	return r.db.Create(q).Error
}

func (r *applicationRepository) FindEmployerQuestionForSeeker(questionID, seekerID uint) (*EmployerQuestionDetail, error) {
	var detail EmployerQuestionDetail
	err := r.db.Table("employer_questions").
		Select("employer_questions.*, jobs.title AS job_title, applications.seeker_id").
		Joins("JOIN applications ON applications.id = employer_questions.application_id").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("employer_questions.id = ? AND applications.seeker_id = ?", questionID, seekerID).
		Scan(&detail).Error
	if err != nil {
		return nil, err
	}
	if detail.ID == 0 {
		return nil, ErrQuestionNotFound
	}
	return &detail, nil
}

func (r *applicationRepository) SeekerAnswerExists(questionID, seekerID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.SeekerAnswer{}).
		Where("question_id = ? AND seeker_id = ?", questionID, seekerID).
		Count(&count).Error
	return count > 0, err
}

func (r *applicationRepository) CreateSeekerAnswer(answer *models.SeekerAnswer) error {
	return r.db.Create(answer).Error
}

func (r *applicationRepository) EmployerQuestionsByApplication(appID uint) ([]models.EmployerQuestion, error) {
	var questions []models.EmployerQuestion
	err := r.db.Where("application_id = ?", appID).Order("asked_at ASC").Find(&questions).Error
	return questions, err
}

func (r *applicationRepository) SeekerAnswersByQuestionIDs(questionIDs []uint) ([]models.SeekerAnswer, error) {
	if len(questionIDs) == 0 {
		return nil, nil
	}
	var answers []models.SeekerAnswer
	err := r.db.Where("question_id IN ?", questionIDs).Find(&answers).Error
	return answers, err
}
