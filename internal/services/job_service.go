package services

import (
	"regexp"
	"strconv"
	"strings"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

// jobPageSize is the fixed page size of the public listing.
const jobPageSize = 10

var salaryDigitsRe = regexp.MustCompile(`\d+`)

type JobService interface {
	CreateJob(employerID uint, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	UpdateJob(employerID, jobID uint, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	ToggleJobOpen(employerID, jobID uint) (bool, error)
	GetJob(jobID uint) (*dto.JobResponse, error)
	ListOpenJobs(req *dto.JobFilterRequest) (*dto.JobListResponse, error)
	ListEmployerJobs(employerID uint) ([]dto.EmployerJobResponse, error)
}

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	profileRepo repositories.ProfileRepository
}

func NewJobService(jobRepo repositories.JobRepository, profileRepo repositories.ProfileRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo, profileRepo: profileRepo}
}

func (s *JobServiceImpl) CreateJob(employerID uint, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	job := &models.Job{
		EmployerID:         employerID,
		Title:              req.Title,
		Description:        req.Description,
		ContactEmail:       req.ContactEmail,
		ExperienceRequired: req.ExperienceRequired,
		Salary:             req.Salary,
		Location:           req.Location,
		Country:            req.Country,
		IsRemote:           req.IsRemote,
		JobType:            req.JobType,
		Domain:             req.Domain,
		IsOpen:             true,
	}

	// Questions with blank text are skipped rather than rejected, so numbering
	// only counts the kept ones.
	questions := make([]models.JobQuestion, 0, len(req.Questions))
	for _, q := range req.Questions {
		text := strings.TrimSpace(q.QuestionText)
		if text == "" {
			continue
		}
		questions = append(questions, models.JobQuestion{
			QuestionText: text,
			IsRequired:   q.IsRequired,
		})
	}

	if err := s.jobRepo.Create(job, questions); err != nil {
		return nil, apperrors.InternalError(err)
	}

	job.Questions = questions
	resp := dto.ToJobResponse(job)
	return &resp, nil
}

func (s *JobServiceImpl) UpdateJob(employerID, jobID uint, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByIDForEmployer(jobID, employerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound("job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	job.Title = req.Title
	job.Description = req.Description
	job.ContactEmail = req.ContactEmail
	job.ExperienceRequired = req.ExperienceRequired
	job.Salary = req.Salary
	job.Location = req.Location
	job.Country = req.Country
	job.IsRemote = req.IsRemote
	job.JobType = req.JobType
	job.Domain = req.Domain

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.withQuestions(job)
}

// ToggleJobOpen flips the posting between accepting and not accepting
// applications, returning the new state.
func (s *JobServiceImpl) ToggleJobOpen(employerID, jobID uint) (bool, error) {
	job, err := s.jobRepo.FindByIDForEmployer(jobID, employerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return false, apperrors.ErrNotFound("job", "Job not found")
		}
		return false, apperrors.InternalError(err)
	}
	open := !job.IsOpen
	if err := s.jobRepo.SetOpen(jobID, open); err != nil {
		return false, apperrors.InternalError(err)
	}
	return open, nil
}

func (s *JobServiceImpl) GetJob(jobID uint) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound("job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	resp, err := s.withQuestions(job)
	if err != nil {
		return nil, err
	}
	if profile, perr := s.profileRepo.FindEmployerByUserID(job.EmployerID); perr == nil {
		resp.CompanyName = profile.CompanyName
	}
	return resp, nil
}

// ListOpenJobs returns one fixed-size page of open postings. Filters the
// database can express run there; the minimum-salary comparison reads the
// first digit run of the free-text salary, so it runs here before paging.
func (s *JobServiceImpl) ListOpenJobs(req *dto.JobFilterRequest) (*dto.JobListResponse, error) {
	filter := repositories.JobFilter{
		Query:      req.Query,
		Location:   req.Location,
		RemoteOnly: req.RemoteOnly,
		JobType:    req.JobType,
		Domain:     req.Domain,
		Currency:   req.Currency,
	}

	listings, err := s.jobRepo.ListOpen(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.MinSalary != nil {
		filtered := listings[:0]
		for _, l := range listings {
			if n, ok := firstSalaryNumber(l.Salary); ok && n >= *req.MinSalary {
				filtered = append(filtered, l)
			}
		}
		listings = filtered
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	total := len(listings)
	totalPages := (total + jobPageSize - 1) / jobPageSize

	start := (page - 1) * jobPageSize
	if start > total {
		start = total
	}
	end := start + jobPageSize
	if end > total {
		end = total
	}

	resp := &dto.JobListResponse{
		Jobs:       []dto.JobResponse{},
		Page:       page,
		PageSize:   jobPageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}
	for i := start; i < end; i++ {
		jr := dto.ToJobResponse(&listings[i].Job)
		jr.CompanyName = listings[i].CompanyName
		resp.Jobs = append(resp.Jobs, jr)
	}
	return resp, nil
}

func (s *JobServiceImpl) ListEmployerJobs(employerID uint) ([]dto.EmployerJobResponse, error) {
	jobs, err := s.jobRepo.ListByEmployer(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]dto.EmployerJobResponse, 0, len(jobs))
	for i := range jobs {
		resp = append(resp, dto.EmployerJobResponse{
			JobResponse:      dto.ToJobResponse(&jobs[i].Job),
			ApplicationCount: jobs[i].ApplicationCount,
		})
	}
	return resp, nil
}

func (s *JobServiceImpl) withQuestions(job *models.Job) (*dto.JobResponse, error) {
	questions, err := s.jobRepo.Questions(job.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	job.Questions = questions
	resp := dto.ToJobResponse(job)
	return &resp, nil
}

// firstSalaryNumber extracts the first run of digits from a free-text salary
// such as "$90,000-120,000" (returning 90). Salaries without digits never
// match a minimum-salary filter.
func firstSalaryNumber(salary string) (int, bool) {
	m := salaryDigitsRe.FindString(salary)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}
