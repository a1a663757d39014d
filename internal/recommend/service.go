package recommend

import (
	"context"
	"errors"
	"strings"

	"github.com/cardiovital/server/internal/preferences"
	"github.com/cardiovital/server/internal/storage"
	"github.com/cardiovital/server/internal/userctx"
)

var ErrProfileRequired = errors.New("profile required")

// Service resolves the caller's profile and language, then delegates to
// the pure engine functions.
type Service struct {
	storage     storage.Storage
	medications storage.MedicationsStorage
	prefs       *preferences.Service
}

// NewService creates a new service.
func NewService(st storage.Storage, medications storage.MedicationsStorage, prefs *preferences.Service) *Service {
	return &Service{storage: st, medications: medications, prefs: prefs}
}

// GetExercises returns the exercise catalog for the caller.
func (s *Service) GetExercises(ctx context.Context, acceptLanguage string) ([]Exercise, error) {
	profile, err := s.profile(ctx)
	if err != nil {
		return nil, err
	}

	lang := s.prefs.ResolveLanguage(ctx, acceptLanguage)
	return Exercises(profile.WeightKg, profile.Age, lang), nil
}

// GetDiet returns the diet plan for the caller.
func (s *Service) GetDiet(ctx context.Context, acceptLanguage string) (*DietPlan, error) {
	profile, err := s.profile(ctx)
	if err != nil {
		return nil, err
	}

	lang := s.prefs.ResolveLanguage(ctx, acceptLanguage)
	plan := Diet(profile.WeightKg, profile.HeightCm, profile.Age, lang)
	return &plan, nil
}

// GetTips returns the health tips for the caller.
func (s *Service) GetTips(ctx context.Context, acceptLanguage string) ([]Tip, error) {
	profile, err := s.profile(ctx)
	if err != nil {
		return nil, err
	}

	medicationCount := 0
	if meds, err := s.medications.ListMedications(ctx, profile.OwnerUserID); err == nil {
		medicationCount = len(meds)
	}

	lang := s.prefs.ResolveLanguage(ctx, acceptLanguage)
	return Tips(profile.WeightKg, profile.Age, medicationCount, lang), nil
}

// GetSummary bundles exercises, diet, and tips in one response.
func (s *Service) GetSummary(ctx context.Context, acceptLanguage string) (*SummaryResponse, error) {
	profile, err := s.profile(ctx)
	if err != nil {
		return nil, err
	}

	medicationCount := 0
	if meds, err := s.medications.ListMedications(ctx, profile.OwnerUserID); err == nil {
		medicationCount = len(meds)
	}

	lang := s.prefs.ResolveLanguage(ctx, acceptLanguage)

	return &SummaryResponse{
		Exercises: Exercises(profile.WeightKg, profile.Age, lang),
		Diet:      Diet(profile.WeightKg, profile.HeightCm, profile.Age, lang),
		Tips:      Tips(profile.WeightKg, profile.Age, medicationCount, lang),
	}, nil
}

func (s *Service) profile(ctx context.Context) (*storage.Profile, error) {
	userID := userIDFromContext(ctx)

	profile, ok, err := s.storage.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrProfileRequired
	}
	return &profile, nil
}

func userIDFromContext(ctx context.Context) string {
	if userID, ok := userctx.GetUserID(ctx); ok && strings.TrimSpace(userID) != "" {
		return userID
	}
	return "default"
}
