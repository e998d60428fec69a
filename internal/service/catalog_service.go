package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ghafer-khalfaoui/ai-chatbot/internal/dto"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/entity"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/pkg/logger"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/repository/specification"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/repository/unitofwork"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/advisor"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/nlp/extractor"
)

// ICatalogService is the read side of the course catalog. The dialogue
// router consumes the advisor-typed methods; the HTTP catalog routes
// consume the DTO methods.
type ICatalogService interface {
	GetCourse(ctx context.Context, code string) (*advisor.Course, error)
	GetPrerequisites(ctx context.Context, code string) ([]advisor.Prerequisite, error)
	Snapshot(ctx context.Context) (advisor.Catalog, error)
	TrackAttributes(ctx context.Context) (*advisor.TrackAttributes, error)
	FindInstructor(ctx context.Context, text string) (*advisor.Instructor, error)

	ShowCourse(ctx context.Context, code string) (*dto.CourseResponse, error)
	ShowPrerequisites(ctx context.Context, code string) ([]*dto.PrerequisiteResponse, error)
	SearchInstructor(ctx context.Context, query string) (*dto.InstructorResponse, error)
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	extractor  *extractor.Extractor
	logger     logger.ILogger
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, ex *extractor.Extractor, log logger.ILogger) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		extractor:  ex,
		logger:     log,
	}
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// normalizeCode runs the entity extractor over the raw input and falls
// back to stripping punctuation, so "cs 116" and "CS-116" both resolve
// to "CS116".
func (s *catalogService) normalizeCode(raw string) string {
	if code := s.extractor.ExtractCourseCode(raw); code != "" {
		return code
	}
	return strings.ToUpper(nonAlphanumeric.ReplaceAllString(raw, ""))
}

func courseToAdvisor(c *entity.Course) *advisor.Course {
	return &advisor.Course{
		Code:        c.Code,
		Name:        c.Name,
		CreditHours: c.CreditHours,
		Description: c.Description,
		Prereqs:     advisor.NewCodeSet(c.Prereqs...),
	}
}

func (s *catalogService) GetCourse(ctx context.Context, code string) (*advisor.Course, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	clean := s.normalizeCode(code)
	course, err := uow.CourseRepository().FindOne(ctx, specification.ByCourseCode{Code: clean})
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, nil
	}
	return courseToAdvisor(course), nil
}

func (s *catalogService) GetPrerequisites(ctx context.Context, code string) ([]advisor.Prerequisite, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	clean := s.normalizeCode(code)
	rows, err := uow.CourseRepository().Prerequisites(ctx, clean)
	if err != nil {
		return nil, err
	}

	prereqs := make([]advisor.Prerequisite, 0, len(rows))
	for _, row := range rows {
		prereqs = append(prereqs, advisor.Prerequisite{
			Code: row.PrerequisiteCode,
			Name: row.PrerequisiteName,
		})
	}
	return prereqs, nil
}

func (s *catalogService) Snapshot(ctx context.Context) (advisor.Catalog, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	courses, err := uow.CourseRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make(advisor.Catalog, len(courses)+len(advisor.GermanCourseCodes))
	for _, c := range courses {
		catalog[c.Code] = courseToAdvisor(c)
	}

	// Language courses are offered without catalog rows in some terms;
	// synthesize placeholders so planning and hour counts stay correct.
	for _, g := range advisor.GermanCourseCodes {
		if _, ok := catalog[g]; ok {
			continue
		}
		catalog[g] = &advisor.Course{
			Code:        g,
			Name:        fmt.Sprintf("German %s", g),
			CreditHours: 3,
			Description: "German Language",
			Prereqs:     advisor.NewCodeSet(),
		}
	}

	return catalog, nil
}

func (s *catalogService) TrackAttributes(ctx context.Context) (*advisor.TrackAttributes, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.TrackRequirementRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		// Seeded deployments carry the requirements in code until the
		// track_requirements table is populated.
		return advisor.DefaultTrackAttributes(), nil
	}

	attrs := &advisor.TrackAttributes{
		CommonCompulsory: advisor.NewCodeSet(),
		Tracks:           make(map[string]advisor.TrackRequirements),
	}
	for _, row := range rows {
		switch row.Kind {
		case entity.TrackRequirementCommon:
			attrs.CommonCompulsory.Add(row.CourseCode)
		case entity.TrackRequirementCompulsory:
			reqs := attrs.Tracks[row.Track]
			if reqs.Compulsory == nil {
				reqs.Compulsory = advisor.NewCodeSet()
			}
			if reqs.Electives == nil {
				reqs.Electives = advisor.NewCodeSet()
			}
			reqs.Compulsory.Add(row.CourseCode)
			attrs.Tracks[row.Track] = reqs
		case entity.TrackRequirementElective:
			reqs := attrs.Tracks[row.Track]
			if reqs.Compulsory == nil {
				reqs.Compulsory = advisor.NewCodeSet()
			}
			if reqs.Electives == nil {
				reqs.Electives = advisor.NewCodeSet()
			}
			reqs.Electives.Add(row.CourseCode)
			attrs.Tracks[row.Track] = reqs
		default:
			s.logger.Warn("CatalogService", "Unknown track requirement kind", map[string]interface{}{"kind": row.Kind, "course_code": row.CourseCode})
		}
	}
	return attrs, nil
}

func (s *catalogService) FindInstructor(ctx context.Context, text string) (*advisor.Instructor, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	term := s.extractor.ExtractInstructorQuery(text)
	if term == "" {
		return nil, nil
	}

	// First pass: case-insensitive substring match.
	instructor, err := uow.InstructorRepository().FindOne(ctx, specification.NameContains{Term: term})
	if err != nil {
		return nil, err
	}
	if instructor != nil {
		return instructorToAdvisor(instructor), nil
	}

	// Second pass: closest name by edit distance, so "smth" still finds
	// "Smith". Below the cutoff we report no match rather than guess.
	all, err := uow.InstructorRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	const cutoff = 0.4
	var best *entity.Instructor
	bestScore := cutoff
	for _, candidate := range all {
		score := nameSimilarity(term, candidate.Name)
		if score >= bestScore {
			best = candidate
			bestScore = score
		}
	}
	if best == nil {
		return nil, nil
	}
	return instructorToAdvisor(best), nil
}

func instructorToAdvisor(i *entity.Instructor) *advisor.Instructor {
	return &advisor.Instructor{
		Name:           i.Name,
		Title:          i.Title,
		OfficeLocation: i.OfficeLocation,
		Email:          i.Email,
		Phone:          i.Phone,
		Status:         i.Status,
	}
}

// nameSimilarity normalizes Levenshtein distance into [0,1], where 1 is
// an exact match.
func nameSimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 1
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// DTO-facing lookups for the catalog HTTP routes.

func (s *catalogService) ShowCourse(ctx context.Context, code string) (*dto.CourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	clean := s.normalizeCode(code)
	course, err := uow.CourseRepository().FindOne(ctx, specification.ByCourseCode{Code: clean})
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, nil
	}

	prereqs := course.Prereqs
	if prereqs == nil {
		prereqs = []string{}
	}
	return &dto.CourseResponse{
		Code:        course.Code,
		Name:        course.Name,
		CreditHours: course.CreditHours,
		Description: course.Description,
		Prereqs:     prereqs,
	}, nil
}

func (s *catalogService) ShowPrerequisites(ctx context.Context, code string) ([]*dto.PrerequisiteResponse, error) {
	prereqs, err := s.GetPrerequisites(ctx, code)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.PrerequisiteResponse, 0, len(prereqs))
	for _, p := range prereqs {
		response = append(response, &dto.PrerequisiteResponse{
			Code: p.Code,
			Name: p.Name,
		})
	}
	return response, nil
}

func (s *catalogService) SearchInstructor(ctx context.Context, query string) (*dto.InstructorResponse, error) {
	instructor, err := s.FindInstructor(ctx, query)
	if err != nil {
		return nil, err
	}
	if instructor == nil {
		return nil, nil
	}
	return &dto.InstructorResponse{
		Name:           instructor.Name,
		Title:          instructor.Title,
		OfficeLocation: instructor.OfficeLocation,
		Email:          instructor.Email,
		Phone:          instructor.Phone,
		Status:         instructor.Status,
	}, nil
}
