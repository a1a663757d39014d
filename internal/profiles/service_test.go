package profiles

import (
	"context"
	"testing"

	"github.com/cardiovital/server/internal/plans"
	"github.com/cardiovital/server/internal/storage/memory"
	"github.com/cardiovital/server/internal/userctx"
)

func newTestService() *Service {
	return NewService(memory.New())
}

func TestGetProfileNotFound(t *testing.T) {
	service := newTestService()

	_, err := service.GetProfile(context.Background())
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpsertProfileDefaultsToEssencial(t *testing.T) {
	service := newTestService()

	profile, err := service.UpsertProfile(context.Background(), UpsertProfileRequest{
		Age:      55,
		WeightKg: 82,
		HeightCm: 176,
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if profile.Plan != plans.Essencial {
		t.Errorf("expected plan %q, got %q", plans.Essencial, profile.Plan)
	}
	if profile.OnboardingCompleted {
		t.Error("new profile should not be onboarded")
	}
}

func TestUpsertProfileValidation(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name string
		req  UpsertProfileRequest
		want error
	}{
		{"zero age", UpsertProfileRequest{Age: 0, WeightKg: 80, HeightCm: 175}, ErrInvalidAge},
		{"age too high", UpsertProfileRequest{Age: 121, WeightKg: 80, HeightCm: 175}, ErrInvalidAge},
		{"zero weight", UpsertProfileRequest{Age: 55, WeightKg: 0, HeightCm: 175}, ErrInvalidWeight},
		{"zero height", UpsertProfileRequest{Age: 55, WeightKg: 80, HeightCm: 0}, ErrInvalidHeight},
		{"unknown plan", UpsertProfileRequest{Age: 55, WeightKg: 80, HeightCm: 175, Plan: "diamond"}, ErrInvalidPlan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.UpsertProfile(context.Background(), tt.req); err != tt.want {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestUpsertProfileKeepsPlanAndOnboarding(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	if _, err := service.UpsertProfile(ctx, UpsertProfileRequest{Age: 55, WeightKg: 82, HeightCm: 176, Plan: plans.Premium}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if _, err := service.CompleteOnboarding(ctx); err != nil {
		t.Fatalf("onboarding failed: %v", err)
	}

	// Update without a plan field keeps the existing plan and onboarding flag.
	profile, err := service.UpsertProfile(ctx, UpsertProfileRequest{Age: 56, WeightKg: 80, HeightCm: 176})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if profile.Plan != plans.Premium {
		t.Errorf("expected plan to survive update, got %q", profile.Plan)
	}
	if !profile.OnboardingCompleted {
		t.Error("expected onboarding flag to survive update")
	}
	if profile.Age != 56 {
		t.Errorf("expected age 56, got %d", profile.Age)
	}
}

func TestCompleteOnboardingRequiresProfile(t *testing.T) {
	service := newTestService()

	if _, err := service.CompleteOnboarding(context.Background()); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestChangePlan(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	if _, err := service.UpsertProfile(ctx, UpsertProfileRequest{Age: 55, WeightKg: 82, HeightCm: 176}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	profile, err := service.ChangePlan(ctx, ChangePlanRequest{Plan: "elite"})
	if err != nil {
		t.Fatalf("change plan failed: %v", err)
	}
	if profile.Plan != plans.Elite {
		t.Errorf("expected plan elite, got %q", profile.Plan)
	}

	if _, err := service.ChangePlan(ctx, ChangePlanRequest{Plan: "gold"}); err != ErrInvalidPlan {
		t.Errorf("expected ErrInvalidPlan, got %v", err)
	}
}

func TestProfilesIsolatedPerUser(t *testing.T) {
	service := newTestService()

	alice := userctx.WithUserID(context.Background(), "alice")
	bob := userctx.WithUserID(context.Background(), "bob")

	if _, err := service.UpsertProfile(alice, UpsertProfileRequest{Age: 40, WeightKg: 70, HeightCm: 168}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if _, err := service.GetProfile(bob); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for other user, got %v", err)
	}
}
