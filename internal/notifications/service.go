// Package notifications builds the medication reminder inbox. A
// per-minute check compares each medication's configured times against
// the owner's local wall clock and upserts one inbox entry per
// medication, time slot, and day.
package notifications

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cardiovital/server/internal/i18n"
	"github.com/cardiovital/server/internal/plans"
	"github.com/cardiovital/server/internal/storage"
	"github.com/cardiovital/server/internal/userctx"
	"github.com/google/uuid"
)

// KindMedicationReminder tags reminder inbox entries.
const KindMedicationReminder = "medication_reminder"

// Service generates and serves the reminder inbox.
type Service struct {
	storage          storage.NotificationsStorage
	profiles         storage.Storage
	medications      storage.MedicationsStorage
	prefs            storage.PreferencesStorage
	toleranceMinutes int
	now              func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates a new service. toleranceMinutes widens the exact
// minute match; 0 keeps strict equality.
func NewService(st storage.NotificationsStorage, profiles storage.Storage, medications storage.MedicationsStorage, prefs storage.PreferencesStorage, toleranceMinutes int) *Service {
	if toleranceMinutes < 0 {
		toleranceMinutes = 0
	}
	return &Service{
		storage:          st,
		profiles:         profiles,
		medications:      medications,
		prefs:            prefs,
		toleranceMinutes: toleranceMinutes,
		now:              time.Now,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
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

// Generate runs one reminder check for an owner. Reminders require a
// paid plan and the reminders preference; a medication already marked
// taken today is suppressed.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	owner := strings.TrimSpace(req.OwnerUserID)
	if owner == "" {
		owner = userIDFromContext(ctx)
	}

	now := req.Now
	if now.IsZero() {
		now = s.now()
	}

	profile, ok, err := s.profiles.GetProfile(ctx, owner)
	if err != nil {
		return nil, err
	}
	if !ok || !plans.HasFeatureAccess(profile.Plan, plans.FeatureReminders) {
		return &GenerateResponse{}, nil
	}

	prefs, hasPrefs, err := s.prefs.GetPreferences(ctx, owner)
	if err != nil {
		return nil, err
	}
	if hasPrefs && !prefs.RemindersEnabled {
		return &GenerateResponse{}, nil
	}

	lang := i18n.Default
	loc := time.UTC
	if hasPrefs {
		if parsed, valid := i18n.Parse(prefs.Language); valid {
			lang = parsed
		}
		if prefs.TimeZone != "" {
			if parsed, err := time.LoadLocation(prefs.TimeZone); err == nil {
				loc = parsed
			}
		}
	}

	local := now.In(loc)
	today := local.Format("2006-01-02")
	currentMinutes := local.Hour()*60 + local.Minute()

	medications, err := s.medications.ListMedications(ctx, owner)
	if err != nil {
		return nil, err
	}

	takenToday := make(map[uuid.UUID]bool)
	records, err := s.medications.ListTakenByDate(ctx, owner, today)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		takenToday[r.MedicationID] = true
	}

	resp := &GenerateResponse{}
	for _, med := range medications {
		for _, slot := range med.Times {
			slotMinutes, err := parseTimeSlot(slot)
			if err != nil {
				continue
			}
			diff := currentMinutes - slotMinutes
			if diff < 0 || diff > s.toleranceMinutes {
				continue
			}

			resp.Matched++
			if takenToday[med.ID] {
				resp.Skipped++
				continue
			}

			s.mu.Lock()
			body := fmt.Sprintf(reminderMessages[lang][s.rng.Intn(10)], med.Name)
			s.mu.Unlock()

			n := storage.Notification{
				OwnerUserID:  owner,
				MedicationID: med.ID,
				TimeSlot:     slot,
				SourceDate:   today,
				Kind:         KindMedicationReminder,
				Title:        fmt.Sprintf(reminderTitles[lang], med.Name),
				Body:         body,
			}
			if err := s.storage.UpsertNotification(ctx, &n); err != nil {
				return nil, err
			}
			resp.Delivered++
		}
	}

	return resp, nil
}

// ListInbox returns the caller's notifications, newest first.
func (s *Service) ListInbox(ctx context.Context, onlyUnread bool, limit, offset int) ([]NotificationDTO, error) {
	owner := userIDFromContext(ctx)

	if limit <= 0 || limit > 200 {
		limit = 50
	}

	notifications, err := s.storage.ListNotifications(ctx, owner, onlyUnread, limit, offset)
	if err != nil {
		return nil, err
	}

	dtos := make([]NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		dtos = append(dtos, toDTO(n))
	}
	return dtos, nil
}

// UnreadCount returns the caller's unread notification count.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	return s.storage.UnreadCount(ctx, userIDFromContext(ctx))
}

// MarkRead marks the given notifications read.
func (s *Service) MarkRead(ctx context.Context, ids []uuid.UUID) (int, error) {
	return s.storage.MarkRead(ctx, userIDFromContext(ctx), ids)
}

// MarkAllRead marks every notification of the caller read.
func (s *Service) MarkAllRead(ctx context.Context) (int, error) {
	return s.storage.MarkAllRead(ctx, userIDFromContext(ctx))
}

// parseTimeSlot converts "HH:MM" to minutes of day.
func parseTimeSlot(slot string) (int, error) {
	hh, mm, ok := strings.Cut(slot, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time slot %q", slot)
	}
	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid time slot %q", slot)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time slot %q", slot)
	}
	return hours*60 + minutes, nil
}

// toDTO converts storage.Notification to NotificationDTO.
func toDTO(n storage.Notification) NotificationDTO {
	return NotificationDTO{
		ID:           n.ID,
		MedicationID: n.MedicationID,
		TimeSlot:     n.TimeSlot,
		SourceDate:   n.SourceDate,
		Kind:         n.Kind,
		Title:        n.Title,
		Body:         n.Body,
		CreatedAt:    n.CreatedAt,
		ReadAt:       n.ReadAt,
	}
}

func userIDFromContext(ctx context.Context) string {
	if userID, ok := userctx.GetUserID(ctx); ok && strings.TrimSpace(userID) != "" {
		return userID
	}
	return "default"
}
