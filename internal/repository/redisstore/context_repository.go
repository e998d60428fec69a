package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ghafer-khalfaoui/ai-chatbot/internal/pkg/logger"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/store"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "chat:context:"
	// Redis only bounds memory; session expiry is decided on read by the
	// context manager, so the key TTL is deliberately generous.
	keyTTL = 24 * time.Hour
)

// ContextRepository persists dialogue contexts in Redis so multiple
// instances behind a load balancer share the same session state.
type ContextRepository struct {
	rdb    *redis.Client
	logger logger.ILogger
}

func NewContextRepository(rdb *redis.Client, log logger.ILogger) *ContextRepository {
	return &ContextRepository{
		rdb:    rdb,
		logger: log,
	}
}

func (r *ContextRepository) Save(ctx *store.Context) {
	data, err := json.Marshal(ctx)
	if err != nil {
		r.logger.Error("ContextRepository", "Failed to marshal context", map[string]interface{}{"session_id": ctx.SessionID, "error": err.Error()})
		return
	}
	if err := r.rdb.Set(context.Background(), keyPrefix+ctx.SessionID, data, keyTTL).Err(); err != nil {
		r.logger.Error("ContextRepository", "Failed to save context", map[string]interface{}{"session_id": ctx.SessionID, "error": err.Error()})
	}
}

func (r *ContextRepository) Get(sessionID string) (*store.Context, bool) {
	data, err := r.rdb.Get(context.Background(), keyPrefix+sessionID).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Error("ContextRepository", "Failed to load context", map[string]interface{}{"session_id": sessionID, "error": err.Error()})
		}
		return nil, false
	}

	var c store.Context
	if err := json.Unmarshal(data, &c); err != nil {
		r.logger.Error("ContextRepository", "Failed to unmarshal context", map[string]interface{}{"session_id": sessionID, "error": err.Error()})
		return nil, false
	}
	if c.PassedCourses == nil {
		c.PassedCourses = make(map[string]struct{})
	}
	return &c, true
}

func (r *ContextRepository) Delete(sessionID string) {
	if err := r.rdb.Del(context.Background(), keyPrefix+sessionID).Err(); err != nil {
		r.logger.Error("ContextRepository", "Failed to delete context", map[string]interface{}{"session_id": sessionID, "error": err.Error()})
	}
}
