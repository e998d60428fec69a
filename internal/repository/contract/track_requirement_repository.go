package contract

import (
	"context"

	"github.com/ghafer-khalfaoui/ai-chatbot/internal/entity"
)

type TrackRequirementRepository interface {
	FindAll(ctx context.Context) ([]*entity.TrackRequirement, error)
}
