package mapper

import (
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/entity"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ChatSessionToModel(e *entity.ChatSession) *model.ChatSession {
	s := &model.ChatSession{
		Id:        e.Id,
		Title:     e.Title,
		CreatedAt: e.CreatedAt,
	}
	if e.UpdatedAt != nil {
		s.UpdatedAt = *e.UpdatedAt
	}
	return s
}

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	e := &entity.ChatSession{
		Id:        s.Id,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
	}
	if !s.UpdatedAt.IsZero() {
		updated := s.UpdatedAt
		e.UpdatedAt = &updated
	}
	return e
}

func (m *ChatMapper) ChatMessageToModel(e *entity.ChatMessage) *model.ChatMessage {
	return &model.ChatMessage{
		Id:            e.Id,
		ChatSessionId: e.ChatSessionId,
		Role:          e.Role,
		Content:       e.Content,
		IntentTag:     e.IntentTag,
		CreatedAt:     e.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessageToEntity(s *model.ChatMessage) *entity.ChatMessage {
	return &entity.ChatMessage{
		Id:            s.Id,
		ChatSessionId: s.ChatSessionId,
		Role:          s.Role,
		Content:       s.Content,
		IntentTag:     s.IntentTag,
		CreatedAt:     s.CreatedAt,
	}
}

func (m *ChatMapper) UsageStatToEntity(s *model.UsageStat) *entity.UsageStat {
	return &entity.UsageStat{
		Id:        s.Id,
		IntentTag: s.IntentTag,
		Count:     s.Count,
		UpdatedAt: s.UpdatedAt,
	}
}
