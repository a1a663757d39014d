package coach

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cardiovital/server/internal/preferences"
	"github.com/cardiovital/server/internal/storage/memory"
)

func newTestHandler() *Handler {
	store := memory.New()
	prefs := preferences.NewService(store)
	service := NewService(store, store, store, prefs)
	return NewHandler(service)
}

func TestHandleSend(t *testing.T) {
	handler := newTestHandler()

	body, _ := json.Marshal(SendMessageRequest{Message: "tell me about my heart"})
	req := httptest.NewRequest(http.MethodPost, "/v1/coach/messages", bytes.NewReader(body))
	req.Header.Set("Accept-Language", "en")
	w := httptest.NewRecorder()

	handler.HandleSend(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var resp SendMessageResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Message.Role != "user" {
		t.Errorf("expected user message, got role %s", resp.Message.Role)
	}
	if resp.Reply.Role != "assistant" {
		t.Errorf("expected assistant reply, got role %s", resp.Reply.Role)
	}
	if resp.Reply.Content == "" {
		t.Error("expected a non-empty reply")
	}
}

func TestHandleSendEmptyMessage(t *testing.T) {
	handler := newTestHandler()

	body, _ := json.Marshal(SendMessageRequest{Message: "   "})
	req := httptest.NewRequest(http.MethodPost, "/v1/coach/messages", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleSend(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestHandleListAfterSend(t *testing.T) {
	handler := newTestHandler()

	body, _ := json.Marshal(SendMessageRequest{Message: "hello coach"})
	sendReq := httptest.NewRequest(http.MethodPost, "/v1/coach/messages", bytes.NewReader(body))
	handler.HandleSend(httptest.NewRecorder(), sendReq)

	req := httptest.NewRequest(http.MethodGet, "/v1/coach/messages", nil)
	w := httptest.NewRecorder()

	handler.HandleList(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp MessagesResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// One exchange is two stored messages, oldest first
	if len(resp.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(resp.Messages))
	}
	if resp.Messages[0].Role != "user" || resp.Messages[1].Role != "assistant" {
		t.Errorf("expected user then assistant, got %s then %s", resp.Messages[0].Role, resp.Messages[1].Role)
	}
}
