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

type InstructorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewInstructorRepository(db *gorm.DB) contract.InstructorRepository {
	return &InstructorRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *InstructorRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InstructorRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Instructor, error) {
	var m model.Instructor
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.InstructorToEntity(&m), nil
}

func (r *InstructorRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Instructor, error) {
	var models []*model.Instructor
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	instructors := make([]*entity.Instructor, 0, len(models))
	for _, m := range models {
		instructors = append(instructors, r.mapper.InstructorToEntity(m))
	}
	return instructors, nil
}
