package implementation

import (
	"context"

	"github.com/ghafer-khalfaoui/ai-chatbot/internal/entity"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/mapper"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/model"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/repository/contract"

	"gorm.io/gorm"
)

type TrackRequirementRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewTrackRequirementRepository(db *gorm.DB) contract.TrackRequirementRepository {
	return &TrackRequirementRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *TrackRequirementRepositoryImpl) FindAll(ctx context.Context) ([]*entity.TrackRequirement, error) {
	var models []*model.TrackRequirement
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	reqs := make([]*entity.TrackRequirement, 0, len(models))
	for _, m := range models {
		reqs = append(reqs, r.mapper.TrackRequirementToEntity(m))
	}
	return reqs, nil
}
