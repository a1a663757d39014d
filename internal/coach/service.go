package coach

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cardiovital/server/internal/i18n"
	"github.com/cardiovital/server/internal/preferences"
	"github.com/cardiovital/server/internal/storage"
	"github.com/cardiovital/server/internal/userctx"
)

var ErrEmptyMessage = errors.New("message must not be empty")

const defaultHistoryLimit = 50

// Responder turns a user message into a coach reply. The keyword
// responder is the default; an external engine can replace it.
type Responder interface {
	Respond(message string, profile *storage.Profile, medications []storage.Medication, lang i18n.Language) string
}

// KeywordResponder answers from the built-in keyword matcher.
type KeywordResponder struct{}

func (KeywordResponder) Respond(message string, profile *storage.Profile, medications []storage.Medication, lang i18n.Language) string {
	return Respond(message, profile, medications, lang)
}

// Service runs the coach conversation: it persists both sides of the
// exchange and delegates reply generation to the responder.
type Service struct {
	chat        storage.ChatStorage
	profiles    storage.Storage
	medications storage.MedicationsStorage
	prefs       *preferences.Service
	responder   Responder
}

// NewService creates a new service.
func NewService(chat storage.ChatStorage, profiles storage.Storage, medications storage.MedicationsStorage, prefs *preferences.Service) *Service {
	return &Service{
		chat:        chat,
		profiles:    profiles,
		medications: medications,
		prefs:       prefs,
		responder:   KeywordResponder{},
	}
}

// WithResponder swaps the reply engine.
func (s *Service) WithResponder(r Responder) *Service {
	s.responder = r
	return s
}

// SendMessage stores the user message, generates the coach reply, stores
// it, and returns both.
func (s *Service) SendMessage(ctx context.Context, req SendMessageRequest, acceptLanguage string) (*SendMessageResponse, error) {
	userID := userIDFromContext(ctx)

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	var profile *storage.Profile
	if p, ok, err := s.profiles.GetProfile(ctx, userID); err != nil {
		return nil, err
	} else if ok {
		profile = &p
	}

	medications, err := s.medications.ListMedications(ctx, userID)
	if err != nil {
		return nil, err
	}

	lang := s.prefs.ResolveLanguage(ctx, acceptLanguage)

	userMsg, err := s.chat.InsertMessage(ctx, userID, "user", message)
	if err != nil {
		return nil, err
	}

	reply := s.responder.Respond(message, profile, medications, lang)

	assistantMsg, err := s.chat.InsertMessage(ctx, userID, "assistant", reply)
	if err != nil {
		return nil, err
	}

	return &SendMessageResponse{
		Message: toDTO(userMsg),
		Reply:   toDTO(assistantMsg),
	}, nil
}

// ListMessages returns the conversation log, oldest first, with an
// optional created_at cursor for paging back.
func (s *Service) ListMessages(ctx context.Context, limit int, before *time.Time) (*MessagesResponse, error) {
	userID := userIDFromContext(ctx)

	if limit <= 0 || limit > 200 {
		limit = defaultHistoryLimit
	}

	messages, nextBefore, err := s.chat.ListMessages(ctx, userID, limit, before)
	if err != nil {
		return nil, err
	}

	dtos := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, toDTO(m))
	}

	return &MessagesResponse{Messages: dtos, NextBefore: nextBefore}, nil
}

// toDTO converts storage.ChatMessage to MessageDTO.
func toDTO(m storage.ChatMessage) MessageDTO {
	return MessageDTO{
		ID:        m.ID,
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func userIDFromContext(ctx context.Context) string {
	if userID, ok := userctx.GetUserID(ctx); ok && strings.TrimSpace(userID) != "" {
		return userID
	}
	return "default"
}
