// Package meals implements the local meal analyzer. Scores and pool
// picks are random; no external nutrition service is involved.
package meals

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/cardiovital/server/internal/preferences"
	"github.com/cardiovital/server/internal/storage"
	"github.com/cardiovital/server/internal/userctx"
	"github.com/google/uuid"
)

var (
	ErrNotFound         = errors.New("analysis not found")
	ErrEmptyDescription = errors.New("description must not be empty")
)

// DefaultHistoryLimit caps stored analyses per owner.
const DefaultHistoryLimit = 50

// Service holds meal analysis logic.
type Service struct {
	storage      storage.MealAnalysesStorage
	prefs        *preferences.Service
	historyLimit int
	now          func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates a new service.
func NewService(st storage.MealAnalysesStorage, prefs *preferences.Service, historyLimit int) *Service {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Service{
		storage:      st,
		prefs:        prefs,
		historyLimit: historyLimit,
		now:          time.Now,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithNow overrides the clock, for tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithRand overrides the randomness source, for tests.
func (s *Service) WithRand(rng *rand.Rand) *Service {
	s.rng = rng
	return s
}

// Analyze scores a meal description and stores the result. History is
// pruned to the configured cap, newest kept.
func (s *Service) Analyze(ctx context.Context, req AnalyzeMealRequest, acceptLanguage string) (*MealAnalysisDTO, error) {
	userID := userIDFromContext(ctx)

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	lang := s.prefs.ResolveLanguage(ctx, acceptLanguage)
	now := s.now()

	s.mu.Lock()
	score := s.rng.Intn(30) + 60
	kcal := s.rng.Intn(400) + 400
	positives := s.pick(positivePool[lang], 3)
	improvements := s.pick(improvementPool[lang], 2)
	recommendations := s.pick(recommendationPool[lang], 3)
	s.mu.Unlock()

	analysis := storage.MealAnalysis{
		ID:              uuid.New(),
		OwnerUserID:     userID,
		Description:     description,
		Score:           score,
		EstimatedKcal:   kcal,
		PositivePoints:  positives,
		Improvements:    improvements,
		Recommendations: recommendations,
		Date:            now.Format("2006-01-02"),
		CreatedAt:       now,
	}

	if err := s.storage.CreateMealAnalysis(ctx, &analysis, s.historyLimit); err != nil {
		return nil, err
	}

	dto := toDTO(analysis)
	return &dto, nil
}

// ListAnalyses returns the caller's analyses, newest first.
func (s *Service) ListAnalyses(ctx context.Context) ([]MealAnalysisDTO, error) {
	userID := userIDFromContext(ctx)

	analyses, err := s.storage.ListMealAnalyses(ctx, userID, s.historyLimit)
	if err != nil {
		return nil, err
	}

	dtos := make([]MealAnalysisDTO, 0, len(analyses))
	for _, a := range analyses {
		dtos = append(dtos, toDTO(a))
	}
	return dtos, nil
}

// DeleteAnalysis removes one analysis by ID.
func (s *Service) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	userID := userIDFromContext(ctx)

	if err := s.storage.DeleteMealAnalysis(ctx, userID, id); err != nil {
		return ErrNotFound
	}
	return nil
}

// pick returns n random distinct entries from the pool. Callers hold mu.
func (s *Service) pick(pool []string, n int) []string {
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// toDTO converts storage.MealAnalysis to MealAnalysisDTO.
func toDTO(a storage.MealAnalysis) MealAnalysisDTO {
	return MealAnalysisDTO{
		ID:              a.ID,
		Description:     a.Description,
		Score:           a.Score,
		EstimatedKcal:   a.EstimatedKcal,
		PositivePoints:  a.PositivePoints,
		Improvements:    a.Improvements,
		Recommendations: a.Recommendations,
		Date:            a.Date,
		CreatedAt:       a.CreatedAt,
	}
}

func userIDFromContext(ctx context.Context) string {
	if userID, ok := userctx.GetUserID(ctx); ok && strings.TrimSpace(userID) != "" {
		return userID
	}
	return "default"
}
