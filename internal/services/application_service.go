package services

import (
	"fmt"
	"strings"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(seekerID, jobID uint, req *dto.ApplyRequest) (*dto.ApplicationResponse, error)
	UpdateStatus(employerID, appID uint, req *dto.UpdateStatusRequest) (*dto.ApplicationResponse, error)
	AskQuestion(employerID, appID uint, req *dto.AskQuestionRequest) (*dto.EmployerQuestionResponse, error)
	AnswerQuestion(seekerID, questionID uint, req *dto.AnswerQuestionRequest) error
	ListSeekerApplications(seekerID uint) ([]dto.SeekerApplicationResponse, error)
	ListJobApplications(employerID, jobID uint) ([]dto.EmployerApplicationResponse, error)
	GetApplicationForEmployer(employerID, appID uint) (*dto.EmployerApplicationResponse, error)
	ListSeekerQuestions(seekerID, appID uint) ([]dto.EmployerQuestionResponse, error)
}

type ApplicationServiceImpl struct {
	appRepo          repositories.ApplicationRepository
	jobRepo          repositories.JobRepository
	profileRepo      repositories.ProfileRepository
	resumeRepo       repositories.ResumeRepository
	notificationRepo repositories.NotificationRepository
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	resumeRepo repositories.ResumeRepository,
	notificationRepo repositories.NotificationRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:          appRepo,
		jobRepo:          jobRepo,
		profileRepo:      profileRepo,
		resumeRepo:       resumeRepo,
		notificationRepo: notificationRepo,
	}
}

// Apply submits an application. The checks run in a fixed order so callers
// get the most specific failure: resume presence, job existence, job open,
// duplicate application, profile presence, resume ownership, then required
// screening answers.
func (s *ApplicationServiceImpl) Apply(seekerID, jobID uint, req *dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	if req.ResumeID == nil {
		return nil, apperrors.ValidationError("resume_id is required")
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound("application", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !job.IsOpen {
		return nil, apperrors.ErrInvalidState("application", "This job is no longer accepting applications")
	}

	exists, err := s.appRepo.ExistsForJobAndSeeker(jobID, seekerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrConflict("application", "You have already applied to this job")
	}

	hasProfile, err := s.profileRepo.SeekerHasProfile(seekerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !hasProfile {
		return nil, apperrors.ErrPrecondition("application", "Complete your profile before applying")
	}

	if _, err := s.resumeRepo.FindByIDForUser(*req.ResumeID, seekerID); err != nil {
		if apperrors.Is(err, repositories.ErrResumeNotFound) {
			return nil, apperrors.ErrNotFound("application", "Resume not found")
		}
		return nil, apperrors.InternalError(err)
	}

	answers := make(map[uint]string, len(req.Answers))
	for _, a := range req.Answers {
		answers[a.QuestionID] = strings.TrimSpace(a.AnswerText)
	}

	required, err := s.jobRepo.RequiredQuestions(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for _, q := range required {
		if answers[q.ID] == "" {
			return nil, apperrors.ValidationError(
				fmt.Sprintf("Please answer the required question: %s", q.QuestionText))
		}
	}

	app := &models.Application{
		JobID:    jobID,
		SeekerID: seekerID,
		ResumeID: *req.ResumeID,
		Status:   models.ApplicationStatusApplied,
	}
	if err := s.appRepo.Create(app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Answers persist best-effort; a failed insert does not undo the
	// application itself.
	resp := dto.ToApplicationResponse(app)
	for _, a := range req.Answers {
		text := strings.TrimSpace(a.AnswerText)
		if text == "" {
			continue
		}
		answer := &models.ApplicationAnswer{
			ApplicationID: app.ID,
			QuestionID:    a.QuestionID,
			AnswerText:    text,
		}
		if err := s.appRepo.CreateAnswer(answer); err != nil {
			logger.Warn("failed to save application answer",
				"application_id", app.ID, "question_id", a.QuestionID, "error", err)
			continue
		}
		resp.Answers = append(resp.Answers, dto.ApplicationAnswerResponse{
			QuestionID: a.QuestionID,
			AnswerText: text,
		})
	}
	return &resp, nil
}

func (s *ApplicationServiceImpl) UpdateStatus(employerID, appID uint, req *dto.UpdateStatusRequest) (*dto.ApplicationResponse, error) {
	status := models.ApplicationStatus(req.Status)
	if !models.ValidReviewStatuses[status] {
		return nil, apperrors.ValidationError("status must be accepted, rejected or waitlisted")
	}

	detail, err := s.appRepo.FindDetailForEmployer(appID, employerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound("application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.appRepo.UpdateStatus(appID, status, req.Notes); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyStatusChange(detail, status)

	updated, err := s.appRepo.FindDetailForEmployer(appID, employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToApplicationResponse(&updated.Application)
	return &resp, nil
}

func (s *ApplicationServiceImpl) AskQuestion(employerID, appID uint, req *dto.AskQuestionRequest) (*dto.EmployerQuestionResponse, error) {
	if strings.TrimSpace(req.QuestionText) == "" {
		return nil, apperrors.ValidationError("question_text is required")
	}

	detail, err := s.appRepo.FindDetailForEmployer(appID, employerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound("application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	question := &models.EmployerQuestion{
		ApplicationID: appID,
		EmployerID:    employerID,
		QuestionText:  strings.TrimSpace(req.QuestionText),
	}
	if err := s.appRepo.CreateEmployerQuestion(question); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notify(detail.SeekerID, "New question from employer",
		fmt.Sprintf("The employer has a question about your application for %q.", detail.JobTitle),
		models.NotificationTypeInfo, &appID)

	return &dto.EmployerQuestionResponse{
		ID:            question.ID,
		ApplicationID: question.ApplicationID,
		QuestionText:  question.QuestionText,
		AskedAt:       question.AskedAt,
		JobTitle:      detail.JobTitle,
	}, nil
}

func (s *ApplicationServiceImpl) AnswerQuestion(seekerID, questionID uint, req *dto.AnswerQuestionRequest) error {
	if strings.TrimSpace(req.AnswerText) == "" {
		return apperrors.ValidationError("answer_text is required")
	}

	question, err := s.appRepo.FindEmployerQuestionForSeeker(questionID, seekerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrQuestionNotFound) {
			return apperrors.ErrNotFound("application", "Question not found")
		}
		return apperrors.InternalError(err)
	}

	answered, err := s.appRepo.SeekerAnswerExists(questionID, seekerID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if answered {
		return apperrors.ErrConflict("application", "You have already answered this question")
	}

	answer := &models.SeekerAnswer{
		QuestionID: questionID,
		SeekerID:   seekerID,
		AnswerText: strings.TrimSpace(req.AnswerText),
	}
	if err := s.appRepo.CreateSeekerAnswer(answer); err != nil {
		return apperrors.InternalError(err)
	}

	s.notify(question.EmployerID, "Applicant replied",
		fmt.Sprintf("An applicant answered your question about %q.", question.JobTitle),
		models.NotificationTypeInfo, &question.ApplicationID)

	return nil
}

func (s *ApplicationServiceImpl) ListSeekerApplications(seekerID uint) ([]dto.SeekerApplicationResponse, error) {
	apps, err := s.appRepo.ListBySeeker(seekerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]dto.SeekerApplicationResponse, 0, len(apps))
	for i := range apps {
		resp = append(resp, dto.SeekerApplicationResponse{
			ApplicationResponse: dto.ToApplicationResponse(&apps[i].Application),
			JobTitle:            apps[i].JobTitle,
			CompanyName:         apps[i].CompanyName,
		})
	}
	return resp, nil
}

func (s *ApplicationServiceImpl) ListJobApplications(employerID, jobID uint) ([]dto.EmployerApplicationResponse, error) {
	if _, err := s.jobRepo.FindByIDForEmployer(jobID, employerID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound("job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	apps, err := s.appRepo.ListByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]dto.EmployerApplicationResponse, 0, len(apps))
	for i := range apps {
		detail, derr := s.appRepo.FindDetailForEmployer(apps[i].ID, employerID)
		if derr != nil {
			return nil, apperrors.InternalError(derr)
		}
		resp = append(resp, toEmployerApplicationResponse(detail))
	}
	return resp, nil
}

func (s *ApplicationServiceImpl) GetApplicationForEmployer(employerID, appID uint) (*dto.EmployerApplicationResponse, error) {
	detail, err := s.appRepo.FindDetailForEmployer(appID, employerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound("application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := toEmployerApplicationResponse(detail)
	answers, err := s.appRepo.AnswersByApplication(appID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for _, a := range answers {
		resp.Answers = append(resp.Answers, dto.ApplicationAnswerResponse{
			QuestionID: a.QuestionID,
			AnswerText: a.AnswerText,
		})
	}
	return &resp, nil
}

// ListSeekerQuestions returns the follow-up questions on one of the seeker's
// applications, each paired with the seeker's answer when one exists.
func (s *ApplicationServiceImpl) ListSeekerQuestions(seekerID, appID uint) ([]dto.EmployerQuestionResponse, error) {
	apps, err := s.appRepo.ListBySeeker(seekerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	owned := false
	for i := range apps {
		if apps[i].ID == appID {
			owned = true
			break
		}
	}
	if !owned {
		return nil, apperrors.ErrNotFound("application", "Application not found")
	}

	questions, err := s.appRepo.EmployerQuestionsByApplication(appID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := make([]uint, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	answers, err := s.appRepo.SeekerAnswersByQuestionIDs(ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	answerByQuestion := make(map[uint]string, len(answers))
	for _, a := range answers {
		answerByQuestion[a.QuestionID] = a.AnswerText
	}

	resp := make([]dto.EmployerQuestionResponse, 0, len(questions))
	for _, q := range questions {
		out := dto.EmployerQuestionResponse{
			ID:            q.ID,
			ApplicationID: q.ApplicationID,
			QuestionText:  q.QuestionText,
			AskedAt:       q.AskedAt,
		}
		if text, ok := answerByQuestion[q.ID]; ok {
			out.AnswerText = &text
		}
		resp = append(resp, out)
	}
	return resp, nil
}

func toEmployerApplicationResponse(detail *repositories.ApplicationDetail) dto.EmployerApplicationResponse {
	return dto.EmployerApplicationResponse{
		ApplicationResponse: dto.ToApplicationResponse(&detail.Application),
		JobTitle:            detail.JobTitle,
		ApplicantEmail:      detail.ApplicantEmail,
		ApplicantPhone:      detail.ApplicantPhone,
	}
}

// notifyStatusChange creates the single seeker notification for a review
// decision. The message template and severity are fixed per status.
func (s *ApplicationServiceImpl) notifyStatusChange(detail *repositories.ApplicationDetail, status models.ApplicationStatus) {
	var (
		title   string
		message string
		kind    models.NotificationType
	)
	switch status {
	case models.ApplicationStatusAccepted:
		title = "Application accepted"
		message = fmt.Sprintf("Congratulations! Your application for %q has been accepted.", detail.JobTitle)
		kind = models.NotificationTypeSuccess
	case models.ApplicationStatusRejected:
		title = "Application update"
		message = fmt.Sprintf("Your application for %q was not selected this time.", detail.JobTitle)
		kind = models.NotificationTypeError
	case models.ApplicationStatusWaitlisted:
		title = "Application waitlisted"
		message = fmt.Sprintf("Your application for %q has been waitlisted.", detail.JobTitle)
		kind = models.NotificationTypeInfo
	default:
		return
	}
	appID := detail.ID
	s.notify(detail.SeekerID, title, message, kind, &appID)
}

func (s *ApplicationServiceImpl) notify(userID uint, title, message string, kind models.NotificationType, appID *uint) {
	n := &models.Notification{
		UserID:               userID,
		Title:                title,
		Message:              message,
		Type:                 kind,
		RelatedApplicationID: appID,
	}
	if err := s.notificationRepo.Create(n); err != nil {
		logger.Warn("failed to create notification", "user_id", userID, "error", err)
	}
}
