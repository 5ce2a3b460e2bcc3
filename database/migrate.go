package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobportal_backend/internal/config"
	"jobportal_backend/internal/models"
)

func ConnectGorm() (*gorm.DB, error) {
	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// AutoMigrate creates or updates every table. It runs once at startup;
// request handlers never touch the schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
}
