package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jobportal_backend/internal/config"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.JobSeekerProfile{},
		&models.EmployerProfile{},
		&models.Job{},
		&models.JobQuestion{},
		&models.Application{},
		&models.ApplicationAnswer{},
		&models.EmployerQuestion{},
		&models.SeekerAnswer{},
		&models.Resume{},
		&models.Notification{},
		&models.Payment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLHours = 168
	cfg.Upload.MaxResumeSize = 5 * 1024 * 1024
	cfg.Payment.KeyID = "rzp_test_key"
	cfg.Payment.KeySecret = "rzp_test_secret"
	cfg.Payment.ActivationAmount = 10000
	cfg.Payment.Currency = "INR"
	cfg.Email.BaseURL = "http://localhost:4000"
	return cfg
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "x",
		Role:         role,
		IsPaid:       true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createSeekerProfile(t *testing.T, db *gorm.DB, userID uint) {
	t.Helper()

	profile := &models.JobSeekerProfile{
		UserID:      userID,
		Name:        "Test Seeker",
		PhoneNumber: "+911234567890",
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create seeker profile: %v", err)
	}
}

func createEmployerProfile(t *testing.T, db *gorm.DB, userID uint, company string) {
	t.Helper()

	profile := &models.EmployerProfile{
		UserID:      userID,
		CompanyName: company,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create employer profile: %v", err)
	}
}

func createTestResume(t *testing.T, db *gorm.DB, userID uint, title string, isDefault bool) *models.Resume {
	t.Helper()

	resume := &models.Resume{
		UserID:    userID,
		Title:     title,
		FileURL:   "/files/resumes/" + title + ".pdf",
		FileName:  title + ".pdf",
		FileSize:  1024,
		IsDefault: isDefault,
	}
	if err := db.Create(resume).Error; err != nil {
		t.Fatalf("failed to create test resume: %v", err)
	}
	return resume
}

func newJobService(db *gorm.DB) JobService {
	return NewJobService(repositories.NewJobRepository(db), repositories.NewProfileRepository(db))
}

func newApplicationService(db *gorm.DB) ApplicationService {
	return NewApplicationService(
		repositories.NewApplicationRepository(db),
		repositories.NewJobRepository(db),
		repositories.NewProfileRepository(db),
		repositories.NewResumeRepository(db),
		repositories.NewNotificationRepository(db),
	)
}
