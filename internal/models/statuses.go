package models

type UserRole string
type ApplicationStatus string
type NotificationType string
type PaymentStatus string

const (
	UserRoleJobSeeker UserRole = "job_seeker"
	UserRoleEmployer  UserRole = "employer"
	UserRoleAdmin     UserRole = "admin"

	ApplicationStatusApplied    ApplicationStatus = "applied"
	ApplicationStatusAccepted   ApplicationStatus = "accepted"
	ApplicationStatusRejected   ApplicationStatus = "rejected"
	ApplicationStatusWaitlisted ApplicationStatus = "waitlisted"

	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeError   NotificationType = "error"
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeWarning NotificationType = "warning"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// ValidRegistrationRoles are the roles a user may self-register with.
// Admin accounts are only ever seeded.
var ValidRegistrationRoles = map[UserRole]bool{
	UserRoleJobSeeker: true,
	UserRoleEmployer:  true,
}

// ValidReviewStatuses are the statuses an employer may move an application to.
var ValidReviewStatuses = map[ApplicationStatus]bool{
	ApplicationStatusAccepted:   true,
	ApplicationStatusRejected:   true,
	ApplicationStatusWaitlisted: true,
}
