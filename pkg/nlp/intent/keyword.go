package intent

import "strings"

// keywordRule maps substring cues to an intent tag. Rules are scanned
// in order, so more specific cues must come before generic ones.
type keywordRule struct {
	tag  string
	cues []string
}

var keywordRules = []keywordRule{
	{GraduationCheck, []string{"graduat", "when can i finish", "progress to degree"}},
	{CheckEligibility, []string{"eligib", "can i take", "can i register", "allowed to take"}},
	{MakeSchedule, []string{"schedule", "semester plan", "plan my", "what should i take", "register next"}},
	{AskPrereqs, []string{"prereq", "pre-req", "pre req", "requirement for", "requirements for", "before i take"}},
	{AskInstructorInfo, []string{"instructor", "professor", "teaches", "office", "dr.", "dr ", "prof"}},
	{AskCourseInfo, []string{"tell me about", "describe", "what is cs", "course info", "about the course", "credit"}},
	{Affirm, []string{" yes ", " yeah ", " yep ", " sure ", " ok ", " okay ", "please do"}},
	{Deny, []string{" no ", " nope ", " nah ", "don't", "dont "}},
	{Greeting, []string{"hello", " hi ", " hey ", "good morning", "good evening"}},
	{Goodbye, []string{"bye", "goodbye", "see you"}},
	{Thanks, []string{"thank", "thx", "appreciate"}},
}

// KeywordResolver is the deterministic fallback used when the model's
// confidence is below the gating threshold or the model is
// unreachable.
type KeywordResolver struct{}

func NewKeywordResolver() *KeywordResolver {
	return &KeywordResolver{}
}

// Resolve returns the first matching tag, or Unknown when no cue hits.
func (r *KeywordResolver) Resolve(text string) string {
	norm := " " + strings.ToLower(strings.TrimSpace(text)) + " "
	for _, rule := range keywordRules {
		for _, cue := range rule.cues {
			if strings.Contains(norm, cue) {
				return rule.tag
			}
		}
	}
	return Unknown
}
