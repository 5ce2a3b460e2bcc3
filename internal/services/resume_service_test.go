package services

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

// memStorage keeps blobs in a map for tests.
type memStorage struct {
	blobs map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{blobs: make(map[string][]byte)}
}

func (m *memStorage) Save(_ context.Context, key string, reader io.Reader, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.blobs[key] = data
	return nil
}

func (m *memStorage) Delete(_ context.Context, key string) error {
	delete(m.blobs, key)
	return nil
}

func (m *memStorage) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.blobs[key]
	return ok, nil
}

func (m *memStorage) GetURL(_ context.Context, key string) (string, error) {
	return "/files/" + key, nil
}

func newResumeServiceForTest(t *testing.T) (ResumeService, *gorm.DB, *memStorage) {
	t.Helper()

	db := newTestDB(t)
	store := newMemStorage()
	svc := NewResumeService(repositories.NewResumeRepository(db), store, 5*1024*1024)
	return svc, db, store
}

func uploadPDF(t *testing.T, svc ResumeService, userID uint, title string) *dto.ResumeResponse {
	t.Helper()

	resp, err := svc.Upload(context.Background(), userID, &ResumeUpload{
		Title:    title,
		FileName: title + ".pdf",
		Size:     1024,
		Reader:   bytes.NewReader([]byte("%PDF-1.4 test")),
	})
	require.NoError(t, err)
	return resp
}

func TestUploadFirstResumeBecomesDefault(t *testing.T) {
	svc, db, store := newResumeServiceForTest(t)
	seeker := createTestUser(t, db, "s@x.com", models.UserRoleJobSeeker)

	first := uploadPDF(t, svc, seeker.ID, "CV1")
	assert.True(t, first.IsDefault)
	assert.Contains(t, first.FileURL, "resumes/")

	second := uploadPDF(t, svc, seeker.ID, "CV2")
	assert.False(t, second.IsDefault)

	assert.Len(t, store.blobs, 2)
}

func TestUploadRejectsNonPDF(t *testing.T) {
	svc, db, _ := newResumeServiceForTest(t)
	seeker := createTestUser(t, db, "s@x.com", models.UserRoleJobSeeker)

	_, err := svc.Upload(context.Background(), seeker.ID, &ResumeUpload{
		Title:    "CV",
		FileName: "cv.docx",
		Size:     1024,
		Reader:   strings.NewReader("not a pdf"),
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc, db, _ := newResumeServiceForTest(t)
	seeker := createTestUser(t, db, "s@x.com", models.UserRoleJobSeeker)

	_, err := svc.Upload(context.Background(), seeker.ID, &ResumeUpload{
		Title:    "CV",
		FileName: "cv.pdf",
		Size:     6 * 1024 * 1024,
		Reader:   strings.NewReader("too big"),
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Contains(t, appErr.Message, "5 MB")
}

func TestSetDefaultKeepsExactlyOne(t *testing.T) {
	svc, db, _ := newResumeServiceForTest(t)
	seeker := createTestUser(t, db, "s@x.com", models.UserRoleJobSeeker)

	uploadPDF(t, svc, seeker.ID, "CV1")
	second := uploadPDF(t, svc, seeker.ID, "CV2")

	require.NoError(t, svc.SetDefault(seeker.ID, second.ID))

	var defaults int64
	db.Model(&models.Resume{}).
		Where("user_id = ? AND is_default = ?", seeker.ID, true).Count(&defaults)
	assert.Equal(t, int64(1), defaults)

	var stored models.Resume
	require.NoError(t, db.First(&stored, second.ID).Error)
	assert.True(t, stored.IsDefault)
}

func TestSetDefaultForeignResume(t *testing.T) {
	svc, db, _ := newResumeServiceForTest(t)
	seeker := createTestUser(t, db, "s@x.com", models.UserRoleJobSeeker)
	other := createTestUser(t, db, "o@x.com", models.UserRoleJobSeeker)
	theirs := uploadPDF(t, svc, other.ID, "CV")

	err := svc.SetDefault(seeker.ID, theirs.ID)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestDeleteSoleDefaultResumeRejected(t *testing.T) {
	svc, db, _ := newResumeServiceForTest(t)
	seeker := createTestUser(t, db, "s@x.com", models.UserRoleJobSeeker)
	only := uploadPDF(t, svc, seeker.ID, "CV1")

	err := svc.Delete(context.Background(), seeker.ID, only.ID)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode)

	var count int64
	db.Model(&models.Resume{}).Where("user_id = ?", seeker.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteDefaultPromotesNewest(t *testing.T) {
	svc, db, store := newResumeServiceForTest(t)
	seeker := createTestUser(t, db, "s@x.com", models.UserRoleJobSeeker)

	first := uploadPDF(t, svc, seeker.ID, "CV1")
	second := uploadPDF(t, svc, seeker.ID, "CV2")
	require.True(t, first.IsDefault)
	require.False(t, second.IsDefault)

	require.NoError(t, svc.Delete(context.Background(), seeker.ID, first.ID))

	var promoted models.Resume
	require.NoError(t, db.First(&promoted, second.ID).Error)
	assert.True(t, promoted.IsDefault)

	var defaults int64
	db.Model(&models.Resume{}).
		Where("user_id = ? AND is_default = ?", seeker.ID, true).Count(&defaults)
	assert.Equal(t, int64(1), defaults)

	assert.Len(t, store.blobs, 1)
}

func TestDeleteNonDefaultLeavesDefaultAlone(t *testing.T) {
	svc, db, _ := newResumeServiceForTest(t)
	seeker := createTestUser(t, db, "s@x.com", models.UserRoleJobSeeker)

	first := uploadPDF(t, svc, seeker.ID, "CV1")
	second := uploadPDF(t, svc, seeker.ID, "CV2")

	require.NoError(t, svc.Delete(context.Background(), seeker.ID, second.ID))

	var stored models.Resume
	require.NoError(t, db.First(&stored, first.ID).Error)
	assert.True(t, stored.IsDefault)
}
