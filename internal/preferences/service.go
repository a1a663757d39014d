package preferences

import (
	"context"
	"errors"
	"strings"

	"github.com/cardiovital/server/internal/i18n"
	"github.com/cardiovital/server/internal/storage"
	"github.com/cardiovital/server/internal/userctx"
)

var (
	ErrInvalidLanguage = errors.New("unsupported language")
	ErrInvalidTimeZone = errors.New("invalid time zone")
)

// Service holds user preference logic, including language resolution.
type Service struct {
	storage storage.PreferencesStorage
}

// NewService creates a new service.
func NewService(st storage.PreferencesStorage) *Service {
	return &Service{storage: st}
}

// GetPreferences returns the caller's preferences, defaults when unset.
func (s *Service) GetPreferences(ctx context.Context) (*PreferencesDTO, error) {
	userID := userIDFromContext(ctx)

	prefs, ok, err := s.storage.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		prefs = defaults(userID)
	}

	dto := toDTO(prefs)
	return &dto, nil
}

// UpdatePreferences applies a partial update.
func (s *Service) UpdatePreferences(ctx context.Context, req UpdatePreferencesRequest) (*PreferencesDTO, error) {
	userID := userIDFromContext(ctx)

	prefs, ok, err := s.storage.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		prefs = defaults(userID)
	}

	if req.Language != nil {
		if !i18n.IsValid(*req.Language) {
			return nil, ErrInvalidLanguage
		}
		prefs.Language = strings.ToLower(strings.TrimSpace(*req.Language))
	}
	if req.TimeZone != nil {
		if strings.TrimSpace(*req.TimeZone) == "" {
			return nil, ErrInvalidTimeZone
		}
		prefs.TimeZone = strings.TrimSpace(*req.TimeZone)
	}
	if req.RemindersEnabled != nil {
		prefs.RemindersEnabled = *req.RemindersEnabled
	}

	saved, err := s.storage.UpsertPreferences(ctx, prefs)
	if err != nil {
		return nil, err
	}

	dto := toDTO(saved)
	return &dto, nil
}

// ResolveLanguage picks the caller's language: a stored preference wins,
// otherwise the Accept-Language header decides and the result is persisted
// so later requests stay stable.
func (s *Service) ResolveLanguage(ctx context.Context, acceptLanguage string) i18n.Language {
	userID := userIDFromContext(ctx)

	prefs, ok, err := s.storage.GetPreferences(ctx, userID)
	if err == nil && ok {
		if lang, valid := i18n.Parse(prefs.Language); valid {
			return lang
		}
	}

	lang := i18n.FromAcceptLanguage(acceptLanguage)

	if err == nil {
		if !ok {
			prefs = defaults(userID)
		}
		prefs.Language = string(lang)
		// Best effort persist; resolution still succeeds on failure
		_, _ = s.storage.UpsertPreferences(ctx, prefs)
	}

	return lang
}

// TimeZone returns the caller's stored timezone, empty when unset.
func (s *Service) TimeZone(ctx context.Context) string {
	userID := userIDFromContext(ctx)

	prefs, ok, err := s.storage.GetPreferences(ctx, userID)
	if err != nil || !ok {
		return ""
	}
	return prefs.TimeZone
}

// RemindersEnabled reports whether the owner opted into reminders.
// Defaults to true when no preferences exist.
func (s *Service) RemindersEnabled(ctx context.Context, ownerUserID string) bool {
	prefs, ok, err := s.storage.GetPreferences(ctx, ownerUserID)
	if err != nil || !ok {
		return true
	}
	return prefs.RemindersEnabled
}

func defaults(userID string) storage.Preferences {
	return storage.Preferences{
		OwnerUserID:      userID,
		Language:         "",
		TimeZone:         "",
		RemindersEnabled: true,
	}
}

func toDTO(p storage.Preferences) PreferencesDTO {
	lang := p.Language
	if lang == "" {
		lang = string(i18n.Default)
	}
	return PreferencesDTO{
		Language:         lang,
		TimeZone:         p.TimeZone,
		RemindersEnabled: p.RemindersEnabled,
		UpdatedAt:        p.UpdatedAt,
	}
}

func userIDFromContext(ctx context.Context) string {
	if userID, ok := userctx.GetUserID(ctx); ok && strings.TrimSpace(userID) != "" {
		return userID
	}
	return "default"
}
