package app

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobportal_backend/database"
	"jobportal_backend/internal/config"
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/handlers"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/payment"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/routes"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/storage"
	"jobportal_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Database schema up to date")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the fully wired gin engine. Tests call it with an
// in-memory database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, gormDB, storageInstance)
	appHandlers := initializeHandlers(cfg, serviceContainer)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigin))

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if local, ok := storageInstance.(*storage.LocalStorage); ok {
		ginRouter.Static("/files", local.BasePath())
	}

	authMW := middleware.AuthMiddleware(gormDB, cfg.JWT.Secret)
	routes.RegisterRoutes(ginRouter, appHandlers, authMW)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	resumeRepo := repositories.NewResumeRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	paymentRepo := repositories.NewPaymentRepository(gormDB)

	emailProvider := email.NewProvider(cfg)
	gateway := payment.NewRazorpayGateway(cfg.Payment.KeyID, cfg.Payment.KeySecret, cfg.Payment.BaseURL)

	return &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo, emailProvider, cfg),
		ProfileService: services.NewProfileService(profileRepo),
		JobService:     services.NewJobService(jobRepo, profileRepo),
		ApplicationService: services.NewApplicationService(
			applicationRepo, jobRepo, profileRepo, resumeRepo, notificationRepo),
		ResumeService:       services.NewResumeService(resumeRepo, storageInstance, cfg.Upload.MaxResumeSize),
		NotificationService: services.NewNotificationService(notificationRepo),
		PaymentService:      services.NewPaymentService(gateway, userRepo, paymentRepo, cfg),
	}
}

func initializeHandlers(cfg *config.Config, sc *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(base, sc.AuthService, cfg),
		ProfileHandler:      handlers.NewProfileHandler(base, sc.ProfileService),
		JobHandler:          handlers.NewJobHandler(base, sc.JobService),
		ApplicationHandler:  handlers.NewApplicationHandler(base, sc.ApplicationService),
		ResumeHandler:       handlers.NewResumeHandler(base, sc.ResumeService),
		NotificationHandler: handlers.NewNotificationHandler(base, sc.NotificationService),
		PaymentHandler:      handlers.NewPaymentHandler(base, sc.PaymentService),
	}
}
