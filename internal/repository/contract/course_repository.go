package contract

import (
	"context"

	"github.com/ghafer-khalfaoui/ai-chatbot/internal/entity"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/repository/specification"
)

type CourseRepository interface {
	// FindOne returns nil when no course matches.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Course, error)
	// FindAll returns every course with its prerequisite codes attached.
	FindAll(ctx context.Context) ([]*entity.Course, error)
	// Prerequisites returns the ordered prerequisite list for a course,
	// with display names where the catalog knows them.
	Prerequisites(ctx context.Context, code string) ([]*entity.Prerequisite, error)
	Count(ctx context.Context) (int64, error)
}
