package medications

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/cardiovital/server/internal/storage"
	"github.com/cardiovital/server/internal/userctx"
	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("medication not found")
	ErrEmptyName   = errors.New("name cannot be empty")
	ErrEmptyDosage = errors.New("dosage cannot be empty")
	ErrNoTimes     = errors.New("at least one time is required")
	ErrInvalidTime = errors.New("times must be HH:MM 24h strings")
)

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Service holds medication tracking business logic.
type Service struct {
	storage storage.MedicationsStorage
	now     func() time.Time
}

// NewService creates a new service.
func NewService(st storage.MedicationsStorage) *Service {
	return &Service{
		storage: st,
		now:     time.Now,
	}
}

// WithNow overrides the clock. Tests only.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// ListMedications returns the caller's medications with taken history.
func (s *Service) ListMedications(ctx context.Context) ([]MedicationDTO, error) {
	userID := userIDFromContext(ctx)

	meds, err := s.storage.ListMedications(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.today()

	dtos := make([]MedicationDTO, 0, len(meds))
	for _, med := range meds {
		records, err := s.storage.ListTakenRecords(ctx, userID, med.ID, "", "")
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, toDTO(med, records, today))
	}

	return dtos, nil
}

// CreateMedication stores a new medication for the caller.
func (s *Service) CreateMedication(ctx context.Context, req CreateMedicationRequest) (*MedicationDTO, error) {
	userID := userIDFromContext(ctx)

	if err := validate(req.Name, req.Dosage, req.Times); err != nil {
		return nil, err
	}

	med := &storage.Medication{
		OwnerUserID: userID,
		Name:        strings.TrimSpace(req.Name),
		Dosage:      strings.TrimSpace(req.Dosage),
		Frequency:   strings.TrimSpace(req.Frequency),
		Times:       req.Times,
		Notes:       strings.TrimSpace(req.Notes),
	}

	if err := s.storage.CreateMedication(ctx, med); err != nil {
		return nil, err
	}

	dto := toDTO(*med, nil, s.today())
	return &dto, nil
}

// UpdateMedication replaces a medication's fields.
func (s *Service) UpdateMedication(ctx context.Context, id uuid.UUID, req UpdateMedicationRequest) (*MedicationDTO, error) {
	userID := userIDFromContext(ctx)

	if err := validate(req.Name, req.Dosage, req.Times); err != nil {
		return nil, err
	}

	med, ok, err := s.storage.GetMedication(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	med.Name = strings.TrimSpace(req.Name)
	med.Dosage = strings.TrimSpace(req.Dosage)
	med.Frequency = strings.TrimSpace(req.Frequency)
	med.Times = req.Times
	med.Notes = strings.TrimSpace(req.Notes)

	if err := s.storage.UpdateMedication(ctx, &med); err != nil {
		return nil, err
	}

	records, err := s.storage.ListTakenRecords(ctx, userID, med.ID, "", "")
	if err != nil {
		return nil, err
	}

	dto := toDTO(med, records, s.today())
	return &dto, nil
}

// DeleteMedication removes a medication and its taken records.
func (s *Service) DeleteMedication(ctx context.Context, id uuid.UUID) error {
	userID := userIDFromContext(ctx)

	err := s.storage.DeleteMedication(ctx, userID, id)
	if err != nil {
		return ErrNotFound
	}

	return nil
}

// MarkTaken records an intake stamped with the current date and time.
func (s *Service) MarkTaken(ctx context.Context, id uuid.UUID) (*MedicationDTO, error) {
	userID := userIDFromContext(ctx)

	med, ok, err := s.storage.GetMedication(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	now := s.now()
	record := &storage.TakenRecord{
		OwnerUserID:  userID,
		MedicationID: id,
		Date:         now.Format("2006-01-02"),
		Time:         now.Format("15:04"),
	}

	if err := s.storage.AddTakenRecord(ctx, record); err != nil {
		return nil, err
	}

	records, err := s.storage.ListTakenRecords(ctx, userID, id, "", "")
	if err != nil {
		return nil, err
	}

	dto := toDTO(med, records, s.today())
	return &dto, nil
}

func (s *Service) today() string {
	return s.now().Format("2006-01-02")
}

func validate(name, dosage string, times []string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(dosage) == "" {
		return ErrEmptyDosage
	}
	if len(times) == 0 {
		return ErrNoTimes
	}
	for _, t := range times {
		if !timePattern.MatchString(t) {
			return ErrInvalidTime
		}
	}
	return nil
}

// toDTO converts a medication plus its taken records to the API shape.
func toDTO(med storage.Medication, records []storage.TakenRecord, today string) MedicationDTO {
	taken := make([]TakenDTO, 0, len(records))
	takenToday := false
	for _, r := range records {
		taken = append(taken, TakenDTO{Date: r.Date, Time: r.Time})
		if r.Date == today {
			takenToday = true
		}
	}

	return MedicationDTO{
		ID:         med.ID,
		Name:       med.Name,
		Dosage:     med.Dosage,
		Frequency:  med.Frequency,
		Times:      med.Times,
		Notes:      med.Notes,
		Taken:      taken,
		TakenToday: takenToday,
		CreatedAt:  med.CreatedAt,
		UpdatedAt:  med.UpdatedAt,
	}
}

func userIDFromContext(ctx context.Context) string {
	if userID, ok := userctx.GetUserID(ctx); ok && strings.TrimSpace(userID) != "" {
		return userID
	}
	return "default"
}
