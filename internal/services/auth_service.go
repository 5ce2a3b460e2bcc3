package services

import (
	"time"

	"github.com/google/uuid"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/config"
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	VerifyEmail(token string) error
	CurrentUser(userID uint) (*dto.UserResponse, error)
	DeleteAccount(userID uint) (*dto.DeleteAccountResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	cfg           *config.Config
}

func NewAuthService(userRepo repositories.UserRepository, emailProvider email.Provider, cfg *config.Config) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		cfg:           cfg,
	}
}

func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	role := models.UserRole(req.Role)
	if !models.ValidRegistrationRoles[role] {
		return nil, apperrors.ValidationError("role must be job_seeker or employer")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:             req.Email,
		PasswordHash:      hash,
		Role:              role,
		IsPaid:            true,
		VerificationToken: uuid.NewString(),
	}
	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists("auth", "An account with this email already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	// Verification mail is best-effort, registration succeeds regardless.
	s.sendVerificationEmail(user)

	return s.issueToken(user)
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *AuthServiceImpl) VerifyEmail(token string) error {
	if token == "" {
		return apperrors.ValidationError("verification token is required")
	}

	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound("auth", "Invalid or expired verification token")
		}
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.SetEmailVerified(user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) CurrentUser(userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound("auth", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// DeleteAccount removes the user and every row they own. Each table is
// cleaned independently so one failure does not strand the rest; the
// per-table outcomes are reported back to the caller.
func (s *AuthServiceImpl) DeleteAccount(userID uint) (*dto.DeleteAccountResponse, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound("auth", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	steps, err := s.userRepo.DeleteWithOwnedRows(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.DeleteAccountResponse{Message: "Account deleted"}
	for _, step := range steps {
		out := dto.CleanupStepResponse{Table: step.Table, Deleted: step.Deleted}
		if step.Error != "" {
			out.Error = step.Error
			logger.Warn("account cleanup step failed", "table", step.Table, "user_id", userID, "error", step.Error)
		}
		resp.Cleanup = append(resp.Cleanup, out)
	}
	return resp, nil
}

func (s *AuthServiceImpl) issueToken(user *models.User) (*dto.AuthResponse, error) {
	ttl := time.Duration(s.cfg.JWT.TTLHours) * time.Hour
	token, err := auth.GenerateToken(s.cfg.JWT.Secret, user.ID, user.Email, string(user.Role), ttl)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)}, nil
}

func (s *AuthServiceImpl) sendVerificationEmail(user *models.User) {
	subject, body := email.VerificationEmail(s.cfg.Email.BaseURL, user.VerificationToken)
	if err := s.emailProvider.Send(user.Email, subject, body); err != nil {
		logger.Warn("failed to send verification email", "user_id", user.ID, "error", err)
	}
}
