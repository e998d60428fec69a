package unitofwork

import (
	"context"

	"github.com/ghafer-khalfaoui/ai-chatbot/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CourseRepository() contract.CourseRepository
	InstructorRepository() contract.InstructorRepository
	TrackRequirementRepository() contract.TrackRequirementRepository

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	UsageStatRepository() contract.UsageStatRepository
}
