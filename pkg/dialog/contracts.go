package dialog

import (
	"context"

	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/advisor"
)

// CatalogStore is the narrow read-only contract the router needs from
// the course catalog. Implementations return (nil, nil) for lookups
// that find nothing; errors mean the catalog itself is unreachable.
type CatalogStore interface {
	GetCourse(ctx context.Context, code string) (*advisor.Course, error)
	GetPrerequisites(ctx context.Context, code string) ([]advisor.Prerequisite, error)
	Snapshot(ctx context.Context) (advisor.Catalog, error)
	TrackAttributes(ctx context.Context) (*advisor.TrackAttributes, error)
	FindInstructor(ctx context.Context, text string) (*advisor.Instructor, error)
}

// EntityExtractor pulls course codes and track names out of raw text,
// independent of dialogue state.
type EntityExtractor interface {
	ExtractCourseCode(text string) string
	ExtractAllCourseCodes(text string) []string
	ExtractTrack(text string) string
}
