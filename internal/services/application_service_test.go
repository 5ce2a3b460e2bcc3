package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type applyFixture struct {
	db       *gorm.DB
	svc      ApplicationService
	employer *models.User
	seeker   *models.User
	job      *models.Job
	resume   *models.Resume
	question *models.JobQuestion
}

func newApplyFixture(t *testing.T) *applyFixture {
	t.Helper()

	db := newTestDB(t)
	f := &applyFixture{
		db:       db,
		svc:      newApplicationService(db),
		employer: createTestUser(t, db, "emp@x.com", models.UserRoleEmployer),
		seeker:   createTestUser(t, db, "seeker@x.com", models.UserRoleJobSeeker),
	}
	createEmployerProfile(t, db, f.employer.ID, "Acme Corp")
	createSeekerProfile(t, db, f.seeker.ID)
	f.resume = createTestResume(t, db, f.seeker.ID, "cv", true)

	f.job = &models.Job{
		EmployerID:   f.employer.ID,
		Title:        "Backend Engineer",
		Description:  "Go services",
		ContactEmail: "jobs@x.com",
		IsOpen:       true,
	}
	require.NoError(t, db.Create(f.job).Error)

	f.question = &models.JobQuestion{
		JobID:         f.job.ID,
		QuestionText:  "Years of experience?",
		IsRequired:    true,
		QuestionOrder: 1,
	}
	require.NoError(t, db.Create(f.question).Error)
	return f
}

func (f *applyFixture) apply(answers ...dto.AnswerInput) (*dto.ApplicationResponse, error) {
	return f.svc.Apply(f.seeker.ID, f.job.ID, &dto.ApplyRequest{
		ResumeID: &f.resume.ID,
		Answers:  answers,
	})
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.HTTPCode
}

func TestApplySuccess(t *testing.T) {
	f := newApplyFixture(t)

	resp, err := f.apply(dto.AnswerInput{QuestionID: f.question.ID, AnswerText: "5 years"})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApplied, resp.Status)
	assert.Equal(t, f.resume.ID, resp.ResumeID)
	require.Len(t, resp.Answers, 1)
	assert.Equal(t, "5 years", resp.Answers[0].AnswerText)
}

func TestApplyWithoutResume(t *testing.T) {
	f := newApplyFixture(t)

	_, err := f.svc.Apply(f.seeker.ID, f.job.ID, &dto.ApplyRequest{})
	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))
}

func TestApplyJobNotFound(t *testing.T) {
	f := newApplyFixture(t)

	_, err := f.svc.Apply(f.seeker.ID, 9999, &dto.ApplyRequest{ResumeID: &f.resume.ID})
	require.Error(t, err)
	assert.Equal(t, 404, httpCode(t, err))
}

func TestApplyClosedJob(t *testing.T) {
	f := newApplyFixture(t)
	require.NoError(t, f.db.Model(f.job).Update("is_open", false).Error)

	_, err := f.apply(dto.AnswerInput{QuestionID: f.question.ID, AnswerText: "x"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Contains(t, appErr.Message, "no longer accepting applications")
}

func TestApplyTwiceConflicts(t *testing.T) {
	f := newApplyFixture(t)

	_, err := f.apply(dto.AnswerInput{QuestionID: f.question.ID, AnswerText: "x"})
	require.NoError(t, err)

	_, err = f.apply(dto.AnswerInput{QuestionID: f.question.ID, AnswerText: "x"})
	require.Error(t, err)
	assert.Equal(t, 409, httpCode(t, err))

	var count int64
	f.db.Model(&models.Application{}).
		Where("job_id = ? AND seeker_id = ?", f.job.ID, f.seeker.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestApplyWithoutProfile(t *testing.T) {
	f := newApplyFixture(t)
	require.NoError(t, f.db.Where("user_id = ?", f.seeker.ID).
		Delete(&models.JobSeekerProfile{}).Error)

	_, err := f.apply(dto.AnswerInput{QuestionID: f.question.ID, AnswerText: "x"})
	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))
}

func TestApplyForeignResume(t *testing.T) {
	f := newApplyFixture(t)
	other := createTestUser(t, f.db, "other@x.com", models.UserRoleJobSeeker)
	foreign := createTestResume(t, f.db, other.ID, "theirs", true)

	_, err := f.svc.Apply(f.seeker.ID, f.job.ID, &dto.ApplyRequest{
		ResumeID: &foreign.ID,
		Answers:  []dto.AnswerInput{{QuestionID: f.question.ID, AnswerText: "x"}},
	})
	require.Error(t, err)
	// Ownership failures read as not-found, hiding existence.
	assert.Equal(t, 404, httpCode(t, err))
}

func TestApplyMissingRequiredAnswer(t *testing.T) {
	f := newApplyFixture(t)

	_, err := f.apply()
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Contains(t, appErr.Message, "Years of experience?")

	// A blank answer is as bad as a missing one.
	_, err = f.apply(dto.AnswerInput{QuestionID: f.question.ID, AnswerText: "   "})
	require.Error(t, err)

	var count int64
	f.db.Model(&models.Application{}).Count(&count)
	assert.Zero(t, count, "no application row may exist after a rejected apply")
}

func TestUpdateStatusCreatesNotification(t *testing.T) {
	f := newApplyFixture(t)

	app, err := f.apply(dto.AnswerInput{QuestionID: f.question.ID, AnswerText: "x"})
	require.NoError(t, err)

	notes := "Not enough experience"
	updated, err := f.svc.UpdateStatus(f.employer.ID, app.ID, &dto.UpdateStatusRequest{
		Status: "rejected",
		Notes:  &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, updated.Status)
	require.NotNil(t, updated.StatusUpdatedAt)
	require.NotNil(t, updated.EmployerNotes)
	assert.Equal(t, notes, *updated.EmployerNotes)

	var notifications []models.Notification
	require.NoError(t, f.db.Where("user_id = ?", f.seeker.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypeError, notifications[0].Type)
	assert.Contains(t, notifications[0].Message, "Backend Engineer")
	require.NotNil(t, notifications[0].RelatedApplicationID)
	assert.Equal(t, app.ID, *notifications[0].RelatedApplicationID)
}

func TestUpdateStatusInvalidStatus(t *testing.T) {
	f := newApplyFixture(t)

	app, err := f.apply(dto.AnswerInput{QuestionID: f.question.ID, AnswerText: "x"})
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(f.employer.ID, app.ID, &dto.UpdateStatusRequest{Status: "hired"})
	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))

	// No mutation happened.
	var stored models.Application
	require.NoError(t, f.db.First(&stored, app.ID).Error)
	assert.Equal(t, models.ApplicationStatusApplied, stored.Status)
	assert.Nil(t, stored.StatusUpdatedAt)
}

func TestUpdateStatusForeignApplication(t *testing.T) {
	f := newApplyFixture(t)
	other := createTestUser(t, f.db, "other-emp@x.com", models.UserRoleEmployer)

	app, err := f.apply(dto.AnswerInput{QuestionID: f.question.ID, AnswerText: "x"})
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(other.ID, app.ID, &dto.UpdateStatusRequest{Status: "accepted"})
	require.Error(t, err)
	assert.Equal(t, 404, httpCode(t, err))
}

func TestAskAndAnswerQuestion(t *testing.T) {
	f := newApplyFixture(t)

	app, err := f.apply(dto.AnswerInput{QuestionID: f.question.ID, AnswerText: "x"})
	require.NoError(t, err)

	q, err := f.svc.AskQuestion(f.employer.ID, app.ID, &dto.AskQuestionRequest{
		QuestionText: "When can you start?",
	})
	require.NoError(t, err)
	assert.Equal(t, "When can you start?", q.QuestionText)

	// The seeker got an info notification.
	var count int64
	f.db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", f.seeker.ID, models.NotificationTypeInfo).Count(&count)
	assert.Equal(t, int64(1), count)

	require.NoError(t, f.svc.AnswerQuestion(f.seeker.ID, q.ID, &dto.AnswerQuestionRequest{
		AnswerText: "Two weeks",
	}))

	// Answering twice conflicts.
	err = f.svc.AnswerQuestion(f.seeker.ID, q.ID, &dto.AnswerQuestionRequest{AnswerText: "Again"})
	require.Error(t, err)
	assert.Equal(t, 409, httpCode(t, err))

	// The employer got notified about the answer.
	f.db.Model(&models.Notification{}).Where("user_id = ?", f.employer.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	// The question list pairs questions with answers.
	questions, err := f.svc.ListSeekerQuestions(f.seeker.ID, app.ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	require.NotNil(t, questions[0].AnswerText)
	assert.Equal(t, "Two weeks", *questions[0].AnswerText)
}

func TestAnswerForeignQuestion(t *testing.T) {
	f := newApplyFixture(t)

	app, err := f.apply(dto.AnswerInput{QuestionID: f.question.ID, AnswerText: "x"})
	require.NoError(t, err)

	q, err := f.svc.AskQuestion(f.employer.ID, app.ID, &dto.AskQuestionRequest{
		QuestionText: "When can you start?",
	})
	require.NoError(t, err)

	other := createTestUser(t, f.db, "other@x.com", models.UserRoleJobSeeker)
	err = f.svc.AnswerQuestion(other.ID, q.ID, &dto.AnswerQuestionRequest{AnswerText: "Hi"})
	require.Error(t, err)
	assert.Equal(t, 404, httpCode(t, err))
}

func TestListSeekerApplications(t *testing.T) {
	f := newApplyFixture(t)

	_, err := f.apply(dto.AnswerInput{QuestionID: f.question.ID, AnswerText: "x"})
	require.NoError(t, err)

	apps, err := f.svc.ListSeekerApplications(f.seeker.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Backend Engineer", apps[0].JobTitle)
	assert.Equal(t, "Acme Corp", apps[0].CompanyName)
}

func TestGetApplicationForEmployerIncludesAnswers(t *testing.T) {
	f := newApplyFixture(t)

	app, err := f.apply(dto.AnswerInput{QuestionID: f.question.ID, AnswerText: "5 years"})
	require.NoError(t, err)

	detail, err := f.svc.GetApplicationForEmployer(f.employer.ID, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "seeker@x.com", detail.ApplicantEmail)
	assert.Equal(t, "Backend Engineer", detail.JobTitle)
	require.Len(t, detail.Answers, 1)
	assert.Equal(t, "5 years", detail.Answers[0].AnswerText)
}
