package apperrors

import "net/http"

// Factories for the recurring business errors of the job board. Not-found and
// not-owned are deliberately the same 404 so the API never confirms the
// existence of a resource to a caller who cannot access it.

func ErrNotFound(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

func ErrConflict(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusConflict)
}

func ErrAlreadyExists(domain, message string) *AppError {
	return New(CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrInvalidState covers operations rejected because of the current state of
// the resource (closed job, already activated account).
func ErrInvalidState(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrPrecondition covers operations rejected because a prerequisite resource
// is missing (seeker profile before applying).
func ErrPrecondition(domain, message string) *AppError {
	return New(CodePreconditionFailed, domain, message, http.StatusBadRequest)
}

// ErrInvalidCredentials is returned for any login failure. The message never
// distinguishes an unknown email from a wrong password.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)
