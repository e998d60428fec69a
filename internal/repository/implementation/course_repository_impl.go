package implementation

import (
	"context"
	"errors"

	"github.com/ghafer-khalfaoui/ai-chatbot/internal/entity"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/mapper"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/model"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/repository/contract"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/repository/specification"

	"gorm.io/gorm"
)

type CourseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewCourseRepository(db *gorm.DB) contract.CourseRepository {
	return &CourseRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *CourseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CourseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Course, error) {
	var m model.Course
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var prereqRows []model.Prerequisite
	if err := r.db.WithContext(ctx).Where("course_code = ?", m.Code).Find(&prereqRows).Error; err != nil {
		return nil, err
	}
	prereqs := make([]string, 0, len(prereqRows))
	for _, p := range prereqRows {
		prereqs = append(prereqs, p.PrerequisiteCode)
	}

	return r.mapper.CourseToEntity(&m, prereqs), nil
}

func (r *CourseRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Course, error) {
	var models []*model.Course
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}

	var prereqRows []model.Prerequisite
	if err := r.db.WithContext(ctx).Find(&prereqRows).Error; err != nil {
		return nil, err
	}
	prereqsByCourse := make(map[string][]string, len(models))
	for _, p := range prereqRows {
		prereqsByCourse[p.CourseCode] = append(prereqsByCourse[p.CourseCode], p.PrerequisiteCode)
	}

	courses := make([]*entity.Course, 0, len(models))
	for _, m := range models {
		courses = append(courses, r.mapper.CourseToEntity(m, prereqsByCourse[m.Code]))
	}
	return courses, nil
}

func (r *CourseRepositoryImpl) Prerequisites(ctx context.Context, code string) ([]*entity.Prerequisite, error) {
	type row struct {
		PrerequisiteCode string
		CourseName       string
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("prerequisites p").
		Select("p.prerequisite_code, c.course_name").
		Joins("LEFT JOIN courses c ON p.prerequisite_code = c.course_code").
		Where("p.course_code = ?", code).
		Order("p.prerequisite_code ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	prereqs := make([]*entity.Prerequisite, 0, len(rows))
	for _, rw := range rows {
		prereqs = append(prereqs, &entity.Prerequisite{
			CourseCode:       code,
			PrerequisiteCode: rw.PrerequisiteCode,
			PrerequisiteName: rw.CourseName,
		})
	}
	return prereqs, nil
}

func (r *CourseRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Course{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
