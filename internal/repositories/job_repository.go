package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"jobportal_backend/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter holds the optional listing filters. Zero values impose no
// constraint; set filters combine with AND semantics.
type JobFilter struct {
	Query      string
	Location   string
	RemoteOnly bool
	JobType    string
	Domain     string
	Currency   string
}

// JobListing is a job row joined with the employer's company name.
type JobListing struct {
	models.Job
	CompanyName string `json:"company_name"`
}

// JobWithStats is a job row with its application count, for the employer
// dashboard.
type JobWithStats struct {
	models.Job
	ApplicationCount int64 `json:"application_count"`
}

type JobRepository interface {
	Create(job *models.Job, questions []models.JobQuestion) error
	FindByID(id uint) (*models.Job, error)
	FindByIDForEmployer(id, employerID uint) (*models.Job, error)
	Update(job *models.Job) error
	SetOpen(id uint, open bool) error
	ListOpen(filter JobFilter) ([]JobListing, error)
	ListByEmployer(employerID uint) ([]JobWithStats, error)
	Questions(jobID uint) ([]models.JobQuestion, error)
	RequiredQuestions(jobID uint) ([]models.JobQuestion, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create inserts the job and its screening questions in one transaction,
// numbering questions from 1 in submission order.
func (r *jobRepository) Create(job *models.Job, questions []models.JobQuestion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(job).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].JobID = job.ID
			questions[i].QuestionOrder = i + 1
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *jobRepository) FindByID(id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) FindByIDForEmployer(id, employerID uint) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ? AND employer_id = ?", id, employerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

func (r *jobRepository) SetOpen(id uint, open bool) error {
	return r.db.Model(&models.Job{}).Where("id = ?", id).Update("is_open", open).Error
}

// ListOpen applies every filter the database can express, newest first. The
// minimum-salary filter needs the first digit run of the salary text, so it is
// applied by the service after the scan, together with pagination.
func (r *jobRepository) ListOpen(filter JobFilter) ([]JobListing, error) {
	q := r.db.Table("jobs").
		Select("jobs.*, employer_profiles.company_name").
		Joins("LEFT JOIN employer_profiles ON employer_profiles.user_id = jobs.employer_id").
		Where("jobs.is_open = ?", true).
		Order("jobs.posted_at DESC")

	if filter.Query != "" {
		pattern := "%" + strings.ToLower(filter.Query) + "%"
		q = q.Where(
			"LOWER(jobs.title) LIKE ? OR LOWER(jobs.description) LIKE ? OR LOWER(employer_profiles.company_name) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Location != "" {
		q = q.Where("LOWER(jobs.location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.RemoteOnly {
		q = q.Where("jobs.is_remote = ?", true)
	}
	if filter.JobType != "" {
		q = q.Where("LOWER(jobs.job_type) LIKE ?", "%"+strings.ToLower(filter.JobType)+"%")
	}
	if filter.Domain != "" {
		q = q.Where("LOWER(jobs.domain) LIKE ?", "%"+strings.ToLower(filter.Domain)+"%")
	}
	if filter.Currency != "" {
		q = q.Where("jobs.salary LIKE ?", "%"+filter.Currency+"%")
	}

	var listings []JobListing
	if err := q.Scan(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *jobRepository) ListByEmployer(employerID uint) ([]JobWithStats, error) {
	var jobs []JobWithStats
	err := r.db.Table("jobs").
		Select("jobs.*, COUNT(applications.id) AS application_count").
		Joins("LEFT JOIN applications ON applications.job_id = jobs.id").
		Where("jobs.employer_id = ?", employerID).
		Group("jobs.id").
		Order("jobs.posted_at DESC").
		Scan(&jobs).Error
	return jobs, err
}

func (r *jobRepository) Questions(jobID uint) ([]models.JobQuestion, error) {
	var questions []models.JobQuestion
	err := r.db.Where("job_id = ?", jobID).Order("question_order ASC").Find(&questions).Error
	return questions, err
}

func (r *jobRepository) RequiredQuestions(jobID uint) ([]models.JobQuestion, error) {
	var questions []models.JobQuestion
	err := r.db.Where("job_id = ? AND is_required = ?", jobID, true).
		Order("question_order ASC").Find(&questions).Error
	return questions, err
}
