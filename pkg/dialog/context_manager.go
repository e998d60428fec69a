package dialog

import (
	"sync"
	"time"

	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/advisor"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/store"
)

// ContextManager mediates all access to per-session dialogue state.
// It applies the inactivity expiry on every read and serializes turns
// for the same session so concurrent requests from one user cannot
// lose passed-course updates.
type ContextManager struct {
	store     store.ContextStore
	extractor EntityExtractor
	timeout   time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewContextManager(s store.ContextStore, ex EntityExtractor, timeout time.Duration) *ContextManager {
	return &ContextManager{
		store:     s,
		extractor: ex,
		timeout:   timeout,
		locks:     make(map[string]*sync.Mutex),
	}
}

// LockSession acquires the per-session mutex and returns the unlock
// function. Cross-session turns stay fully parallel.
func (m *ContextManager) LockSession(sessionID string) func() {
	m.mu.Lock()
	lock, ok := m.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[sessionID] = lock
	}
	m.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// GetOrCreate returns the session context, creating it lazily on first
// contact. A context idle for longer than the timeout has its
// transient flow fields reset; track and passed courses survive expiry
// so the student does not repeat themselves.
func (m *ContextManager) GetOrCreate(sessionID string) *store.Context {
	c, ok := m.store.Get(sessionID)
	if !ok {
		c = store.NewContext(sessionID)
		m.store.Save(c)
		return c
	}
	if m.timeout > 0 && time.Since(c.LastInteraction) > m.timeout {
		c.ResetFlow()
	}
	return c
}

// Save persists the context back to the store.
func (m *ContextManager) Save(c *store.Context) {
	m.store.Save(c)
}

// UpdatePassedCourses parses every course code in the text into the
// passed set and returns the codes that were new. Whenever at least
// one code is parsed the remedial set is injected as well: remedials
// are considered satisfied once the student starts listing courses.
func (m *ContextManager) UpdatePassedCourses(c *store.Context, text string) []string {
	codes := m.extractor.ExtractAllCourseCodes(text)
	if len(codes) == 0 {
		return nil
	}
	added := c.AddPassed(codes...)
	for code := range advisor.RemedialCodes {
		c.AddPassed(code)
	}
	return added
}

// SetLastEntity records the last-mentioned entity for pronoun-like
// follow-ups.
func (m *ContextManager) SetLastEntity(c *store.Context, entityType, value string) {
	c.LastEntity = store.Entity{Type: entityType, Value: value}
}

// Forget drops a session's context entirely.
func (m *ContextManager) Forget(sessionID string) {
	m.store.Delete(sessionID)
}
