package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type SendChatRequest struct {
	ChatSessionId uuid.UUID `json:"chat_session_id"`
	Message       string    `json:"message" validate:"required,max=2000"`
}

type SendChatResponse struct {
	ChatSessionId uuid.UUID `json:"chat_session_id"`
	Reply         string    `json:"reply"`
	Intent        string    `json:"intent"`
	State         string    `json:"state"`
}

type GetChatHistoryResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	IntentTag string    `json:"intent_tag,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TurnCompletedMessage is the wire form of a turn event on the
// usage-stats topic.
type TurnCompletedMessage struct {
	EventType string `json:"event_type"`
	SessionId string `json:"session_id"`
	Intent    string `json:"intent"`
	State     string `json:"state"`
	LatencyMs int64  `json:"latency_ms"`
}

type UsageStatResponse struct {
	IntentTag string    `json:"intent_tag"`
	Count     int64     `json:"count"`
	UpdatedAt time.Time `json:"updated_at"`
}
