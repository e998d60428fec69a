package mapper

import (
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/entity"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) CourseToEntity(c *model.Course, prereqs []string) *entity.Course {
	return &entity.Course{
		Code:        c.Code,
		Name:        c.Name,
		CreditHours: c.CreditHours,
		Description: c.Description,
		Prereqs:     prereqs,
	}
}

func (m *CatalogMapper) CourseToModel(e *entity.Course) *model.Course {
	return &model.Course{
		Code:        e.Code,
		Name:        e.Name,
		CreditHours: e.CreditHours,
		Description: e.Description,
	}
}

func (m *CatalogMapper) InstructorToEntity(i *model.Instructor) *entity.Instructor {
	return &entity.Instructor{
		Id:             i.Id,
		Name:           i.Name,
		Title:          i.Title,
		OfficeLocation: i.OfficeLocation,
		Phone:          i.Phone,
		Email:          i.Email,
		Status:         i.Status,
	}
}

func (m *CatalogMapper) TrackRequirementToEntity(t *model.TrackRequirement) *entity.TrackRequirement {
	return &entity.TrackRequirement{
		Id:         t.Id,
		Track:      t.Track,
		CourseCode: t.CourseCode,
		Kind:       t.Kind,
	}
}
