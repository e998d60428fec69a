package contract

import (
	"context"

	"github.com/ghafer-khalfaoui/ai-chatbot/internal/entity"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/repository/specification"
)

type InstructorRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Instructor, error)
	FindAll(ctx context.Context) ([]*entity.Instructor, error)
}
