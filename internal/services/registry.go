package services

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService         AuthService
	ProfileService      ProfileService
	JobService          JobService
	ApplicationService  ApplicationService
	ResumeService       ResumeService
	NotificationService NotificationService
	PaymentService      PaymentService
}
