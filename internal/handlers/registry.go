package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProfileHandler      *ProfileHandler
	JobHandler          *JobHandler
	ApplicationHandler  *ApplicationHandler
	ResumeHandler       *ResumeHandler
	NotificationHandler *NotificationHandler
	PaymentHandler      *PaymentHandler
}
