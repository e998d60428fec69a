package memory

import (
	"time"

	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/store"

	"github.com/patrickmn/go-cache"
)

type ContextRepository struct {
	cache *cache.Cache
}

func NewContextRepository() *ContextRepository {
	// Contexts outlive the dialogue session timeout on purpose: expiry of
	// the conversational flow is decided on read, so a returning student
	// keeps their track and passed courses. The cache only bounds memory.
	c := cache.New(24*time.Hour, 30*time.Minute)
	return &ContextRepository{
		cache: c,
	}
}

func (r *ContextRepository) Save(ctx *store.Context) {
	r.cache.Set(ctx.SessionID, ctx, cache.DefaultExpiration)
}

func (r *ContextRepository) Get(sessionID string) (*store.Context, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Context), true
	}
	return nil, false
}

func (r *ContextRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
