package coach

import (
	"time"

	"github.com/google/uuid"
)

// MessageDTO is the API shape of a chat message.
type MessageDTO struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// SendMessageRequest is the body for POST /v1/coach/messages.
type SendMessageRequest struct {
	Message string `json:"message"`
}

// SendMessageResponse carries the stored user message and the coach reply.
type SendMessageResponse struct {
	Message MessageDTO `json:"message"`
	Reply   MessageDTO `json:"reply"`
}

// MessagesResponse is the body of GET /v1/coach/messages.
type MessagesResponse struct {
	Messages   []MessageDTO `json:"messages"`
	NextBefore *time.Time   `json:"next_before,omitempty"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
