package services

import (
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type ProfileService interface {
	GetSeekerProfile(userID uint) (*dto.SeekerProfileResponse, error)
	SaveSeekerProfile(userID uint, req *dto.SeekerProfileRequest) (*dto.SeekerProfileResponse, error)
	GetEmployerProfile(userID uint) (*dto.EmployerProfileResponse, error)
	SaveEmployerProfile(userID uint, req *dto.EmployerProfileRequest) (*dto.EmployerProfileResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) GetSeekerProfile(userID uint) (*dto.SeekerProfileResponse, error) {
	profile, err := s.profileRepo.FindSeekerByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound("profile", "Profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToSeekerProfileResponse(profile)
	return &resp, nil
}

// SaveSeekerProfile creates the profile on first call and replaces it on
// subsequent calls.
func (s *ProfileServiceImpl) SaveSeekerProfile(userID uint, req *dto.SeekerProfileRequest) (*dto.SeekerProfileResponse, error) {
	profile := req.ToModel(userID)
	if err := s.profileRepo.UpsertSeeker(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToSeekerProfileResponse(profile)
	return &resp, nil
}

func (s *ProfileServiceImpl) GetEmployerProfile(userID uint) (*dto.EmployerProfileResponse, error) {
	profile, err := s.profileRepo.FindEmployerByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound("profile", "Profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToEmployerProfileResponse(profile)
	return &resp, nil
}

func (s *ProfileServiceImpl) SaveEmployerProfile(userID uint, req *dto.EmployerProfileRequest) (*dto.EmployerProfileResponse, error) {
	profile := req.ToModel(userID)
	if err := s.profileRepo.UpsertEmployer(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToEmployerProfileResponse(profile)
	return &resp, nil
}
