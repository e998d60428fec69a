package contract

import (
	"context"

	"github.com/ghafer-khalfaoui/ai-chatbot/internal/entity"
)

type UsageStatRepository interface {
	// Increment bumps the counter for an intent tag, creating the row
	// on first sight.
	Increment(ctx context.Context, intentTag string) error
	FindAll(ctx context.Context) ([]*entity.UsageStat, error)
}
