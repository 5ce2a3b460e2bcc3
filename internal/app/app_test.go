package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jobportal_backend/database"
	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/config"
	"jobportal_backend/internal/models"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Server.CORSOrigin = "*"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLHours = 168
	cfg.Upload.MaxResumeSize = 5 * 1024 * 1024
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/files"
	cfg.Payment.KeyID = "rzp_test_key"
	cfg.Payment.KeySecret = "rzp_test_secret"
	cfg.Payment.ActivationAmount = 10000
	cfg.Payment.Currency = "INR"

	return &testServer{router: SetupRouter(cfg, db), db: db}
}

// do sends a JSON request. cookie may be empty for anonymous calls.
func (ts *testServer) do(t *testing.T, method, path, cookie string, body interface{}) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: cookie})
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec, rec.Body.String()
}

// register creates a user through the API and returns the session cookie.
func (ts *testServer) register(t *testing.T, email, role string) string {
	t.Helper()

	rec, body := ts.do(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":    email,
		"password": "pw123456",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, body)

	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName {
			require.True(t, c.HttpOnly)
			return c.Value
		}
	}
	t.Fatal("registration did not set the session cookie")
	return ""
}

func (ts *testServer) createSeekerProfile(t *testing.T, cookie string) {
	t.Helper()

	rec, body := ts.do(t, http.MethodPut, "/api/profile/seeker", cookie, map[string]interface{}{
		"name":         "Test Seeker",
		"phone_number": "+911234567890",
	})
	require.Equal(t, http.StatusOK, rec.Code, body)
}

func (ts *testServer) uploadResume(t *testing.T, cookie, title string) uint {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("title", title))
	fw, err := w.CreateFormFile("resume", title+".pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4 test content"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/seeker/resumes", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: cookie})

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.ID
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec, body := ts.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "ok")
}

func TestAuthFlow(t *testing.T) {
	ts := newTestServer(t)

	cookie := ts.register(t, "a@x.com", "job_seeker")

	rec, body := ts.do(t, http.MethodGet, "/api/auth/me", cookie, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "a@x.com")

	// Wrong password yields the generic message.
	rec, body = ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "a@x.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, body, "Invalid email or password")

	// So does an unknown email.
	rec, body = ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "nobody@x.com",
		"password": "pw123456",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, body, "Invalid email or password")

	// No cookie, no access.
	rec, _ = ts.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A tampered cookie fails closed.
	rec, _ = ts.do(t, http.MethodGet, "/api/auth/me", cookie+"x", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeletedUserLosesAccessImmediately(t *testing.T) {
	ts := newTestServer(t)

	cookie := ts.register(t, "a@x.com", "job_seeker")

	rec, _ := ts.do(t, http.MethodPost, "/api/auth/delete-account", cookie, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// The credential is still cryptographically valid but the user is gone.
	rec, _ = ts.do(t, http.MethodGet, "/api/auth/me", cookie, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleGating(t *testing.T) {
	ts := newTestServer(t)

	seekerCookie := ts.register(t, "seeker@x.com", "job_seeker")

	// A seeker cannot post jobs.
	rec, _ := ts.do(t, http.MethodPost, "/api/employer/jobs", seekerCookie, map[string]interface{}{
		"title":         "Nope",
		"description":   "d",
		"contact_email": "c@x.com",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Role changes take effect without re-login because the middleware
	// reads the live row.
	require.NoError(t, ts.db.Model(&models.User{}).
		Where("email = ?", "seeker@x.com").
		Update("role", models.UserRoleEmployer).Error)

	rec, body := ts.do(t, http.MethodPost, "/api/employer/jobs", seekerCookie, map[string]interface{}{
		"title":         "Now allowed",
		"description":   "d",
		"contact_email": "c@x.com",
	})
	assert.Equal(t, http.StatusCreated, rec.Code, body)
}

func TestApplyRequiredQuestionFlow(t *testing.T) {
	ts := newTestServer(t)

	employerCookie := ts.register(t, "emp@x.com", "employer")
	seekerCookie := ts.register(t, "seeker@x.com", "job_seeker")

	rec, body := ts.do(t, http.MethodPost, "/api/employer/jobs", employerCookie, map[string]interface{}{
		"title":         "Backend Engineer",
		"description":   "Go services",
		"contact_email": "jobs@x.com",
		"questions": []map[string]interface{}{
			{"question_text": "Years of experience?", "is_required": true},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, body)

	var job struct {
		ID        uint `json:"id"`
		Questions []struct {
			ID uint `json:"id"`
		} `json:"questions"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &job))
	require.Len(t, job.Questions, 1)

	ts.createSeekerProfile(t, seekerCookie)
	resumeID := ts.uploadResume(t, seekerCookie, "CV1")

	// Applying without the required answer names the question.
	rec, body = ts.do(t, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", job.ID), seekerCookie,
		map[string]interface{}{"resume_id": resumeID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body, "Years of experience?")

	// Answering it makes the application go through.
	rec, body = ts.do(t, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", job.ID), seekerCookie,
		map[string]interface{}{
			"resume_id": resumeID,
			"answers": []map[string]interface{}{
				{"question_id": job.Questions[0].ID, "answer_text": "5 years"},
			},
		})
	assert.Equal(t, http.StatusCreated, rec.Code, body)

	// Applying again conflicts.
	rec, _ = ts.do(t, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", job.ID), seekerCookie,
		map[string]interface{}{
			"resume_id": resumeID,
			"answers": []map[string]interface{}{
				{"question_id": job.Questions[0].ID, "answer_text": "5 years"},
			},
		})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestJobToggleReopens(t *testing.T) {
	ts := newTestServer(t)

	employerCookie := ts.register(t, "emp@x.com", "employer")
	seekerCookie := ts.register(t, "seeker@x.com", "job_seeker")

	rec, body := ts.do(t, http.MethodPost, "/api/employer/jobs", employerCookie, map[string]interface{}{
		"title":         "Backend Engineer",
		"description":   "d",
		"contact_email": "c@x.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code, body)
	var job struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &job))

	rec, body = ts.do(t, http.MethodPost, fmt.Sprintf("/api/employer/jobs/%d/toggle", job.ID), employerCookie, nil)
	require.Equal(t, http.StatusOK, rec.Code, body)
	assert.Contains(t, body, `"is_open":false`)

	ts.createSeekerProfile(t, seekerCookie)
	resumeID := ts.uploadResume(t, seekerCookie, "CV1")

	rec, body = ts.do(t, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", job.ID), seekerCookie,
		map[string]interface{}{"resume_id": resumeID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body, "no longer accepting applications")

	// A second toggle reopens the posting and the application goes through.
	rec, body = ts.do(t, http.MethodPost, fmt.Sprintf("/api/employer/jobs/%d/toggle", job.ID), employerCookie, nil)
	require.Equal(t, http.StatusOK, rec.Code, body)
	assert.Contains(t, body, `"is_open":true`)

	rec, body = ts.do(t, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", job.ID), seekerCookie,
		map[string]interface{}{"resume_id": resumeID})
	assert.Equal(t, http.StatusCreated, rec.Code, body)
}

func TestResumeDefaultPromotion(t *testing.T) {
	ts := newTestServer(t)

	cookie := ts.register(t, "seeker@x.com", "job_seeker")
	cv1 := ts.uploadResume(t, cookie, "CV1")
	cv2 := ts.uploadResume(t, cookie, "CV2")

	rec, body := ts.do(t, http.MethodDelete, fmt.Sprintf("/api/seeker/resumes/%d", cv1), cookie, nil)
	require.Equal(t, http.StatusOK, rec.Code, body)

	var stored models.Resume
	require.NoError(t, ts.db.First(&stored, cv2).Error)
	assert.True(t, stored.IsDefault)
}

func TestStatusUpdateNotifiesSeeker(t *testing.T) {
	ts := newTestServer(t)

	employerCookie := ts.register(t, "emp@x.com", "employer")
	seekerCookie := ts.register(t, "seeker@x.com", "job_seeker")

	rec, body := ts.do(t, http.MethodPost, "/api/employer/jobs", employerCookie, map[string]interface{}{
		"title":         "Backend Engineer",
		"description":   "d",
		"contact_email": "c@x.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code, body)
	var job struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &job))

	ts.createSeekerProfile(t, seekerCookie)
	resumeID := ts.uploadResume(t, seekerCookie, "CV1")

	rec, body = ts.do(t, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", job.ID), seekerCookie,
		map[string]interface{}{"resume_id": resumeID})
	require.Equal(t, http.StatusCreated, rec.Code, body)
	var app struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &app))

	rec, body = ts.do(t, http.MethodPatch, fmt.Sprintf("/api/employer/applications/%d", app.ID),
		employerCookie, map[string]interface{}{
			"status": "rejected",
			"notes":  "Not enough experience",
		})
	require.Equal(t, http.StatusOK, rec.Code, body)

	rec, body = ts.do(t, http.MethodGet, "/api/notifications", seekerCookie, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Notifications []struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"notifications"`
		UnreadCount int64 `json:"unread_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, "error", list.Notifications[0].Type)
	assert.Contains(t, list.Notifications[0].Message, "Backend Engineer")
	assert.Equal(t, int64(1), list.UnreadCount)
}

func TestPaymentVerifyForgedSignature(t *testing.T) {
	ts := newTestServer(t)

	cookie := ts.register(t, "seeker@x.com", "job_seeker")

	rec, body := ts.do(t, http.MethodPost, "/api/payment/verify", cookie, map[string]interface{}{
		"order_id":   "order_1",
		"payment_id": "pay_1",
		"signature":  "forged",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body, "Invalid signature")

	var count int64
	ts.db.Model(&models.Payment{}).Count(&count)
	assert.Zero(t, count)
}
