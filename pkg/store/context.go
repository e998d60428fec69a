package store

import "time"

// Flow status values for the advising dialogue state machine.
// Exactly one is active per session; every flow returns to idle.
type Status string

const (
	StatusIdle                   Status = "idle"
	StatusWaitingForTrack        Status = "waiting_for_track"
	StatusWaitingForCourses      Status = "waiting_for_courses"
	StatusWaitingForEligibility  Status = "waiting_for_eligibility"
	StatusWaitingForGradInfo     Status = "waiting_for_grad_info"
	StatusWaitingForCourse       Status = "waiting_for_specific_course"
	StatusWaitingForConfirmation Status = "waiting_for_prereq_confirmation"
)

// Entity types tracked as "last mentioned" for pronoun-like follow-ups
// ("who teaches it?").
const (
	EntityCourse     = "course"
	EntityInstructor = "instructor"
	EntityTrack      = "track"
)

// Context is the per-session mutable dialogue state.
type Context struct {
	SessionID       string              `json:"session_id"`
	Status          Status              `json:"status"`
	Track           string              `json:"track"`
	PassedCourses   map[string]struct{} `json:"passed_courses"`
	TargetCourse    string              `json:"target_course"`
	LastEntity      Entity              `json:"last_entity"`
	PendingIntent   string              `json:"pending_intent"`
	LastInteraction time.Time           `json:"last_interaction"`
}

// Entity is a (type, value) pair of the last entity the user mentioned.
type Entity struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// NewContext returns an idle context for a session.
func NewContext(sessionID string) *Context {
	return &Context{
		SessionID:       sessionID,
		Status:          StatusIdle,
		PassedCourses:   make(map[string]struct{}),
		LastInteraction: time.Now(),
	}
}

// AddPassed inserts codes into the passed set and reports which ones
// were not already present.
func (c *Context) AddPassed(codes ...string) []string {
	if c.PassedCourses == nil {
		c.PassedCourses = make(map[string]struct{})
	}
	var added []string
	for _, code := range codes {
		if _, ok := c.PassedCourses[code]; !ok {
			c.PassedCourses[code] = struct{}{}
			added = append(added, code)
		}
	}
	return added
}

// HasPassed reports whether a course code is in the passed set.
func (c *Context) HasPassed(code string) bool {
	_, ok := c.PassedCourses[code]
	return ok
}

// ResetFlow clears the transient flow fields. Track and PassedCourses
// survive: a session that expired mid-flow keeps what the student
// already told us.
func (c *Context) ResetFlow() {
	c.Status = StatusIdle
	c.TargetCourse = ""
	c.PendingIntent = ""
}

// ClearFlow resets the whole advising flow: status, track, target and
// passed courses together, never partially.
func (c *Context) ClearFlow() {
	c.Status = StatusIdle
	c.Track = ""
	c.TargetCourse = ""
	c.PendingIntent = ""
	c.PassedCourses = make(map[string]struct{})
}

// ContextStore is the session-keyed key-value store the dialogue router
// reads and writes. Implementations must isolate state per session key
// and be safe for concurrent use from different sessions.
type ContextStore interface {
	Get(sessionID string) (*Context, bool)
	Save(ctx *Context)
	Delete(sessionID string)
}
