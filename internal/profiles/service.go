package profiles

import (
	"context"
	"errors"
	"strings"

	"github.com/cardiovital/server/internal/plans"
	"github.com/cardiovital/server/internal/storage"
	"github.com/cardiovital/server/internal/userctx"
)

var (
	ErrNotFound      = errors.New("profile not found")
	ErrInvalidAge    = errors.New("age must be between 1 and 120")
	ErrInvalidWeight = errors.New("weight must be positive")
	ErrInvalidHeight = errors.New("height must be positive")
	ErrInvalidPlan   = errors.New("unknown plan")
)

// Service holds profile business logic.
type Service struct {
	storage storage.Storage
}

// NewService creates a new service.
func NewService(st storage.Storage) *Service {
	return &Service{storage: st}
}

// GetProfile returns the caller's profile.
func (s *Service) GetProfile(ctx context.Context) (*ProfileDTO, error) {
	userID := userIDFromContext(ctx)

	profile, ok, err := s.storage.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	dto := toDTO(profile)
	return &dto, nil
}

// UpsertProfile creates or replaces the caller's profile. The plan and
// onboarding flag survive updates unless the request sets a plan.
func (s *Service) UpsertProfile(ctx context.Context, req UpsertProfileRequest) (*ProfileDTO, error) {
	userID := userIDFromContext(ctx)

	if req.Age <= 0 || req.Age > 120 {
		return nil, ErrInvalidAge
	}
	if req.WeightKg <= 0 {
		return nil, ErrInvalidWeight
	}
	if req.HeightCm <= 0 {
		return nil, ErrInvalidHeight
	}
	if req.Plan != "" && !plans.IsValid(req.Plan) {
		return nil, ErrInvalidPlan
	}

	profile := storage.Profile{
		OwnerUserID: userID,
		Age:         req.Age,
		WeightKg:    req.WeightKg,
		HeightCm:    req.HeightCm,
		Plan:        plans.Essencial,
	}

	if existing, ok, err := s.storage.GetProfile(ctx, userID); err != nil {
		return nil, err
	} else if ok {
		profile.Plan = existing.Plan
		profile.OnboardingCompleted = existing.OnboardingCompleted
	}

	if req.Plan != "" {
		profile.Plan = plans.Normalize(req.Plan)
	}

	saved, err := s.storage.UpsertProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	dto := toDTO(saved)
	return &dto, nil
}

// CompleteOnboarding marks onboarding done for the caller.
func (s *Service) CompleteOnboarding(ctx context.Context) (*ProfileDTO, error) {
	userID := userIDFromContext(ctx)

	profile, ok, err := s.storage.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	profile.OnboardingCompleted = true

	saved, err := s.storage.UpsertProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	dto := toDTO(saved)
	return &dto, nil
}

// ChangePlan switches the caller's subscription plan.
func (s *Service) ChangePlan(ctx context.Context, req ChangePlanRequest) (*ProfileDTO, error) {
	userID := userIDFromContext(ctx)

	if !plans.IsValid(req.Plan) {
		return nil, ErrInvalidPlan
	}

	profile, ok, err := s.storage.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	profile.Plan = plans.Normalize(req.Plan)

	saved, err := s.storage.UpsertProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	dto := toDTO(saved)
	return &dto, nil
}

// toDTO converts storage.Profile to ProfileDTO.
func toDTO(p storage.Profile) ProfileDTO {
	return ProfileDTO{
		Age:                 p.Age,
		WeightKg:            p.WeightKg,
		HeightCm:            p.HeightCm,
		Plan:                p.Plan,
		OnboardingCompleted: p.OnboardingCompleted,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func userIDFromContext(ctx context.Context) string {
	if userID, ok := userctx.GetUserID(ctx); ok && strings.TrimSpace(userID) != "" {
		return userID
	}
	return "default"
}
