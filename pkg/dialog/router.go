package dialog

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/advisor"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/nlp/intent"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/store"
)

// Reply is the outcome of one dialogue turn.
type Reply struct {
	Text   string
	Intent string
	State  store.Status
}

// turn carries everything extracted from the incoming message once,
// before any state handling runs.
type turn struct {
	text       string
	tag        string
	confidence float64
	recovered  bool // tag came from keyword recovery, not the model
	course     string
	track      string
	codes      []string
}

type handlerFunc func(ctx context.Context, c *store.Context, t *turn) string

// Router is the dialogue state machine. Waiting-state handlers run
// first; generic intents dispatch through a handler table. Every turn
// is total: the router always produces a reply and never lets a
// collaborator error escape to the caller.
type Router struct {
	contexts   *ContextManager
	catalog    CatalogStore
	advisor    *advisor.Advisor
	classifier intent.Classifier
	keywords   *intent.KeywordResolver
	extractor  EntityExtractor
	threshold  float64
	logger     *log.Logger

	handlers map[string]handlerFunc
}

func NewRouter(
	contexts *ContextManager,
	catalog CatalogStore,
	adv *advisor.Advisor,
	classifier intent.Classifier,
	ex EntityExtractor,
	confidenceThreshold float64,
	logger *log.Logger,
) *Router {
	r := &Router{
		contexts:   contexts,
		catalog:    catalog,
		advisor:    adv,
		classifier: classifier,
		keywords:   intent.NewKeywordResolver(),
		extractor:  ex,
		threshold:  confidenceThreshold,
		logger:     logger,
	}
	r.handlers = map[string]handlerFunc{
		intent.CheckEligibility:  r.handleCheckEligibility,
		intent.MakeSchedule:      r.handleMakeSchedule,
		intent.RequestAdvice:     r.handleMakeSchedule,
		intent.GraduationCheck:   r.handleGraduationCheck,
		intent.AskCourseInfo:     r.handleAskCourseInfo,
		intent.AskPrereqs:        r.handleAskPrereqs,
		intent.AskInstructorInfo: r.handleAskInstructorInfo,
	}
	return r
}

// HandleTurn runs one complete request-response turn for a session.
func (r *Router) HandleTurn(ctx context.Context, sessionID, text string) Reply {
	t := r.analyze(ctx, text)

	unlock := r.contexts.LockSession(sessionID)
	defer unlock()

	c := r.contexts.GetOrCreate(sessionID)

	// Track the topic: a course mentioned now is the new "it".
	if t.course != "" {
		r.contexts.SetLastEntity(c, store.EntityCourse, t.course)
	}

	var reply string
	if c.Status != store.StatusIdle {
		reply = r.handleWaitingState(ctx, c, t)
	} else {
		reply = r.dispatch(ctx, c, t)
	}

	c.LastInteraction = time.Now()
	r.contexts.Save(c)

	return Reply{Text: reply, Intent: t.tag, State: c.Status}
}

// analyze classifies and extracts entities from the raw text. Below
// the confidence threshold the model's tag is untrusted and keyword
// recovery takes over; if that also fails the tag is Unknown.
func (r *Router) analyze(ctx context.Context, text string) *turn {
	t := &turn{
		text:   text,
		course: r.extractor.ExtractCourseCode(text),
		track:  r.extractor.ExtractTrack(text),
		codes:  r.extractor.ExtractAllCourseCodes(text),
	}

	tag, confidence, err := r.classifier.Classify(ctx, text)
	if err != nil {
		r.logger.Printf("[WARN] classifier unreachable, using keyword recovery: %v", err)
		t.tag = r.keywords.Resolve(text)
		t.recovered = true
		return t
	}

	t.confidence = confidence
	if confidence < r.threshold {
		recovered := r.keywords.Resolve(text)
		r.logger.Printf("[INTENT] low confidence %.2f for %q, keyword recovery -> %s", confidence, tag, recovered)
		t.tag = recovered
		t.recovered = true
		return t
	}

	t.tag = tag
	return t
}

// handleWaitingState tries to satisfy the active flow's requirement
// from the current message before anything else. When the requirement
// cannot be extracted AND the message looks like a topic change, the
// flow's transient state is dropped and generic dispatch takes over.
//
// Topic-change rule: the (possibly keyword-recovered) intent is one of
// the actionable advisory intents and the message carries no payload
// the waiting state could consume.
func (r *Router) handleWaitingState(ctx context.Context, c *store.Context, t *turn) string {
	switch c.Status {
	case store.StatusWaitingForEligibility:
		if len(t.codes) > 0 {
			r.contexts.UpdatePassedCourses(c, t.text)
			c.Status = store.StatusIdle
			return r.runEligibility(ctx, c, c.TargetCourse)
		}
		if r.isTopicChange(c, t) {
			c.ResetFlow()
			return r.dispatch(ctx, c, t)
		}
		return fmt.Sprintf("I'm checking eligibility for **%s**. Please list the courses you have passed (e.g., CS116, MATH101).", c.TargetCourse)

	case store.StatusWaitingForGradInfo:
		if c.Track == "" && t.track != "" {
			c.Track = t.track
		}
		r.contexts.UpdatePassedCourses(c, t.text)

		switch {
		case c.Track != "" && len(c.PassedCourses) > 0:
			c.Status = store.StatusIdle
			return r.runGraduation(ctx, c)
		case c.Track == "":
			if r.isTopicChange(c, t) {
				c.ResetFlow()
				return r.dispatch(ctx, c, t)
			}
			return msgAskTrackFirst
		default:
			return fmt.Sprintf("Okay, checking **%s**. Now list your passed courses.", c.Track)
		}

	case store.StatusWaitingForCourses:
		if len(t.codes) > 0 {
			r.contexts.UpdatePassedCourses(c, t.text)
			c.Status = store.StatusIdle
			return r.runPlan(ctx, c)
		}
		if r.isTopicChange(c, t) {
			c.ResetFlow()
			return r.dispatch(ctx, c, t)
		}
		return msgAskCoursesForPlan

	case store.StatusWaitingForTrack:
		if t.track != "" {
			c.Track = t.track
			if len(c.PassedCourses) > 0 {
				c.Status = store.StatusIdle
				return r.runPlan(ctx, c)
			}
			c.Status = store.StatusWaitingForCourses
			return fmt.Sprintf("Got it, **%s**. Now list your completed courses.", t.track)
		}
		if r.isTopicChange(c, t) {
			c.ResetFlow()
			return r.dispatch(ctx, c, t)
		}
		return msgAskTrack

	case store.StatusWaitingForCourse:
		if t.course != "" {
			pending := c.PendingIntent
			c.Status = store.StatusIdle
			c.PendingIntent = ""
			replay := &turn{text: t.text, tag: pending, course: t.course, track: t.track, codes: t.codes}
			return r.dispatch(ctx, c, replay)
		}
		if c.PendingIntent == intent.CheckEligibility {
			return msgAskEligibilityFor
		}
		return msgAskWhichCourse

	case store.StatusWaitingForConfirmation:
		target := c.TargetCourse
		c.Status = store.StatusIdle
		c.TargetCourse = ""
		if r.isAffirmative(t) {
			replay := &turn{text: t.text, tag: intent.AskPrereqs, course: target}
			return r.handleAskPrereqs(ctx, c, replay)
		}
		return msgAcknowledge
	}

	// Unreachable state value; recover rather than wedge the session.
	c.ResetFlow()
	return r.dispatch(ctx, c, t)
}

func (r *Router) isTopicChange(c *store.Context, t *turn) bool {
	if _, actionable := r.handlers[t.tag]; !actionable {
		return false
	}
	// A waiting flow of the same kind is a re-ask, not a change.
	switch c.Status {
	case store.StatusWaitingForTrack, store.StatusWaitingForCourses:
		if t.tag == intent.MakeSchedule || t.tag == intent.RequestAdvice {
			return false
		}
	case store.StatusWaitingForEligibility:
		if t.tag == intent.CheckEligibility && t.course == "" {
			return false
		}
	case store.StatusWaitingForGradInfo:
		if t.tag == intent.GraduationCheck {
			return false
		}
	}
	return true
}

func (r *Router) isAffirmative(t *turn) bool {
	if t.tag == intent.Affirm {
		return true
	}
	// The model rarely sees bare "yes" turns with high confidence, so
	// double-check with keywords before treating the turn as a denial.
	return r.keywords.Resolve(t.text) == intent.Affirm
}

// dispatch routes an idle-state turn through the intent handler table.
func (r *Router) dispatch(ctx context.Context, c *store.Context, t *turn) string {
	if handler, ok := r.handlers[t.tag]; ok {
		return handler(ctx, c, t)
	}
	if reply, ok := smalltalkReply(t.tag, t.text); ok {
		return reply
	}
	return msgUnknown
}
