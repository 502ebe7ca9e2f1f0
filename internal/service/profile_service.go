package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskflow-api/internal/dto"
	"taskflow-api/internal/repository"
)

// ProfileService defines the interface for profile business logic
type ProfileService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

// profileServiceImpl is the implementation of ProfileService
type profileServiceImpl struct {
	profileRepo repository.ProfileRepository
	logger      *zap.Logger
}

// NewProfileService creates a new instance of ProfileService
func NewProfileService(profileRepo repository.ProfileRepository, logger *zap.Logger) ProfileService {
	return &profileServiceImpl{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (s *profileServiceImpl) GetProfile(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Profile")
	}
	return dto.NewProfileResponse(profile), nil
}

// UpdateProfile applies a partial update. An empty patch is a valid no-op
// and returns the current profile unchanged.
func (s *profileServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "Profile")
	}

	if req.IsEmpty() {
		return dto.NewProfileResponse(profile), nil
	}

	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = *req.AvatarURL
	}

	if err := s.profileRepo.Update(ctx, userID, fields); err != nil {
		return nil, notFoundOr(err, "Profile")
	}

	updated, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "Profile")
	}

	s.logger.Info("profile updated", zap.String("user_id", userID.String()))
	return dto.NewProfileResponse(updated), nil
}
