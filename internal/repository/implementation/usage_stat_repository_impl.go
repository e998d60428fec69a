package implementation

import (
	"context"

	"github.com/ghafer-khalfaoui/ai-chatbot/internal/entity"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/mapper"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/model"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UsageStatRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewUsageStatRepository(db *gorm.DB) contract.UsageStatRepository {
	return &UsageStatRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *UsageStatRepositoryImpl) Increment(ctx context.Context, intentTag string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "intent_tag"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("usage_stats.count + 1")}),
	}).Create(&model.UsageStat{IntentTag: intentTag, Count: 1}).Error
}

func (r *UsageStatRepositoryImpl) FindAll(ctx context.Context) ([]*entity.UsageStat, error) {
	var models []*model.UsageStat
	if err := r.db.WithContext(ctx).Order("count DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	stats := make([]*entity.UsageStat, 0, len(models))
	for _, m := range models {
		stats = append(stats, r.mapper.UsageStatToEntity(m))
	}
	return stats, nil
}
