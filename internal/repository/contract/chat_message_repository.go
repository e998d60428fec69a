package contract

import (
	"context"

	"github.com/ghafer-khalfaoui/ai-chatbot/internal/entity"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	DeleteByChatSessionId(ctx context.Context, sessionId uuid.UUID) error
}
