package validator

import (
	"github.com/go-playground/validator/v10"

	"jobportal_backend/internal/models"
)

// registerCustomRules installs the domain rules used by the request DTOs.
func registerCustomRules(v *validator.Validate) {
	// user_role: a role a user may self-register with.
	_ = v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return models.ValidRegistrationRoles[models.UserRole(fl.Field().String())]
	})

	// review_status: a status an employer may set on an application.
	_ = v.RegisterValidation("review_status", func(fl validator.FieldLevel) bool {
		return models.ValidReviewStatuses[models.ApplicationStatus(fl.Field().String())]
	})
}
