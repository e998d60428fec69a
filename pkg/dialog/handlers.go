package dialog

import (
	"context"
	"fmt"
	"strings"

	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/advisor"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/nlp/intent"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/store"
)

// resolveTarget picks the course under discussion: the one mentioned
// in this message, else the last-mentioned course from context.
func resolveTarget(c *store.Context, t *turn) string {
	if t.course != "" {
		return t.course
	}
	if c.LastEntity.Type == store.EntityCourse {
		return c.LastEntity.Value
	}
	return ""
}

func (r *Router) handleCheckEligibility(ctx context.Context, c *store.Context, t *turn) string {
	target := resolveTarget(c, t)
	if target == "" {
		c.Status = store.StatusWaitingForCourse
		c.PendingIntent = intent.CheckEligibility
		return msgAskEligibilityFor
	}

	if len(c.PassedCourses) == 0 {
		c.Status = store.StatusWaitingForEligibility
		c.TargetCourse = target
		return fmt.Sprintf("Okay, let's check **%s**. Please list your completed courses.", target)
	}

	return r.runEligibility(ctx, c, target)
}

func (r *Router) handleMakeSchedule(ctx context.Context, c *store.Context, t *turn) string {
	// A fresh planning request starts from a clean slate.
	c.ClearFlow()
	if t.track != "" {
		c.Track = t.track
	}
	r.contexts.UpdatePassedCourses(c, t.text)

	switch {
	case c.Track != "" && len(c.PassedCourses) > 0:
		return r.runPlan(ctx, c)
	case c.Track != "":
		c.Status = store.StatusWaitingForCourses
		return fmt.Sprintf("Planning for **%s**. Which courses have you passed?", c.Track)
	default:
		c.Status = store.StatusWaitingForTrack
		return "Sure! First, are you **Cybersecurity**, **Data Science**, or **General**?"
	}
}

func (r *Router) handleGraduationCheck(ctx context.Context, c *store.Context, t *turn) string {
	c.ClearFlow()
	if t.track != "" {
		c.Track = t.track
	}
	r.contexts.UpdatePassedCourses(c, t.text)

	if c.Track != "" && len(c.PassedCourses) > 0 {
		return r.runGraduation(ctx, c)
	}
	c.Status = store.StatusWaitingForGradInfo
	return msgAskGradInfo
}

func (r *Router) handleAskCourseInfo(ctx context.Context, c *store.Context, t *turn) string {
	target := resolveTarget(c, t)
	if target == "" {
		c.Status = store.StatusWaitingForCourse
		c.PendingIntent = intent.AskCourseInfo
		return msgAskWhichCourse
	}

	course, err := r.catalog.GetCourse(ctx, target)
	if err != nil {
		r.logger.Printf("[ERROR] course lookup failed for %s: %v", target, err)
		return msgCatalogUnreachable
	}
	if course == nil {
		return fmt.Sprintf("I couldn't find details for %s.", target)
	}
	return fmt.Sprintf("📘 **%s**\n%s\n%s\nCredits: %d", course.Code, course.Name, course.Description, course.CreditHours)
}

func (r *Router) handleAskPrereqs(ctx context.Context, c *store.Context, t *turn) string {
	target := resolveTarget(c, t)
	if target == "" {
		c.Status = store.StatusWaitingForCourse
		c.PendingIntent = intent.AskPrereqs
		return msgAskWhichCourse
	}

	course, err := r.catalog.GetCourse(ctx, target)
	if err != nil {
		r.logger.Printf("[ERROR] course lookup failed for %s: %v", target, err)
		return msgCatalogUnreachable
	}
	if course == nil {
		return fmt.Sprintf("I couldn't find details for %s.", target)
	}

	prereqs, err := r.catalog.GetPrerequisites(ctx, target)
	if err != nil {
		r.logger.Printf("[ERROR] prerequisite lookup failed for %s: %v", target, err)
		return msgCatalogUnreachable
	}
	if len(prereqs) == 0 {
		return fmt.Sprintf("**%s** has no prerequisites.", target)
	}

	parts := make([]string, 0, len(prereqs))
	for _, p := range prereqs {
		if p.Name != "" {
			parts = append(parts, fmt.Sprintf("%s (%s)", p.Code, p.Name))
		} else {
			parts = append(parts, p.Code)
		}
	}
	return fmt.Sprintf("🔗 **Prerequisites for %s**:\n%s", target, strings.Join(parts, ", "))
}

func (r *Router) handleAskInstructorInfo(ctx context.Context, c *store.Context, t *turn) string {
	// The raw text carries the name, not the course code.
	instructor, err := r.catalog.FindInstructor(ctx, t.text)
	if err != nil {
		r.logger.Printf("[ERROR] instructor lookup failed: %v", err)
		return msgCatalogUnreachable
	}
	if instructor != nil {
		r.contexts.SetLastEntity(c, store.EntityInstructor, instructor.Name)
		return fmt.Sprintf("👨‍🏫 **%s**\nOffice: %s\nEmail: %s\nPhone: %s",
			instructor.Name, instructor.OfficeLocation, instructor.Email, instructor.Phone)
	}

	if target := resolveTarget(c, t); target != "" {
		return fmt.Sprintf("I can find instructor offices (e.g., 'Where is Dr. Adam?'), but the semester schedule isn't linked yet, so I can't tell you who is teaching **%s** right now.", target)
	}
	return "I couldn't find that instructor. Try a name, e.g. 'Where is Dr. Adam?'."
}

// runEligibility evaluates the verdict and, when exactly one
// prerequisite is missing, offers to chain into a prerequisite lookup
// for it on the next turn.
func (r *Router) runEligibility(ctx context.Context, c *store.Context, target string) string {
	catalog, err := r.catalog.Snapshot(ctx)
	if err != nil || len(catalog) == 0 {
		r.logger.Printf("[ERROR] catalog snapshot unavailable: %v", err)
		return msgCatalogUnreachable
	}

	verdict := r.advisor.CheckEligibility(catalog, target, advisor.CodeSet(c.PassedCourses))
	reply := verdict.Render()

	if verdict.Found && !verdict.Eligible && len(verdict.Missing) == 1 {
		missing := verdict.Missing[0]
		c.Status = store.StatusWaitingForConfirmation
		c.TargetCourse = missing
		reply += fmt.Sprintf("\nWould you like to see the prerequisites for **%s**?", missing)
	}
	return reply
}

func (r *Router) runPlan(ctx context.Context, c *store.Context) string {
	catalog, err := r.catalog.Snapshot(ctx)
	if err != nil || len(catalog) == 0 {
		r.logger.Printf("[ERROR] catalog snapshot unavailable: %v", err)
		return msgCatalogUnreachable
	}
	attrs, err := r.catalog.TrackAttributes(ctx)
	if err != nil {
		r.logger.Printf("[ERROR] track attributes unavailable: %v", err)
		return msgCatalogUnreachable
	}

	plan := r.advisor.GeneratePlan(catalog, attrs, c.Track, advisor.CodeSet(c.PassedCourses))
	return plan.Render()
}

func (r *Router) runGraduation(ctx context.Context, c *store.Context) string {
	catalog, err := r.catalog.Snapshot(ctx)
	if err != nil || len(catalog) == 0 {
		r.logger.Printf("[ERROR] catalog snapshot unavailable: %v", err)
		return msgCatalogUnreachable
	}
	attrs, err := r.catalog.TrackAttributes(ctx)
	if err != nil {
		r.logger.Printf("[ERROR] track attributes unavailable: %v", err)
		return msgCatalogUnreachable
	}

	report := r.advisor.CheckGraduation(catalog, attrs, c.Track, advisor.CodeSet(c.PassedCourses))
	return report.Render()
}
