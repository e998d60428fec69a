package dialog

import (
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/nlp/intent"
)

// User-facing message templates. Kept together so the conversational
// voice stays consistent across handlers.
const (
	msgCatalogUnreachable = "⚠️ I can't reach the course catalog right now. Please try again in a moment."
	msgAskWhichCourse     = "Which course are you asking about?"
	msgAskEligibilityFor  = "Which course do you want to check eligibility for?"
	msgAskTrack           = "Please specify: General, Data Science, or Cybersecurity."
	msgAskCoursesForPlan  = "Please list your passed courses so I can plan your schedule."
	msgAskGradInfo        = "To check graduation status, I need your **Track** and **Passed Courses**."
	msgAskTrackFirst      = "First, tell me your track (Cybersecurity, Data Science, or General)."
	msgUnknown            = "I'm listening, but I'm not sure how to help with that. Could you rephrase?"
	msgAcknowledge        = "Okay. Let me know if there is anything else I can check for you."
)

// smalltalkResponses answers conversational intents without touching
// the catalog. Selection is deterministic on the message length so the
// same input always gets the same reply.
var smalltalkResponses = map[string][]string{
	intent.Greeting: {
		"Hello! I'm your academic advising assistant. Ask me about courses, prerequisites, eligibility, or semester planning.",
		"Hi there! How can I help with your study plan today?",
	},
	intent.Goodbye: {
		"Goodbye! Good luck with your semester.",
		"See you! Come back whenever you need advising help.",
	},
	intent.Thanks: {
		"You're welcome!",
		"Happy to help. Anything else about your courses?",
	},
	intent.Joke: {
		"Why did the student take a ladder to class? Because the course was at a higher level!",
		"I'd tell you a graduation joke, but you have to wait 145 credit hours for the punchline.",
	},
	intent.Capabilities: {
		"I can check course eligibility, explain prerequisites, look up course and instructor info, plan your semester, and track your graduation progress.",
	},
}

func smalltalkReply(tag, text string) (string, bool) {
	responses, ok := smalltalkResponses[tag]
	if !ok || len(responses) == 0 {
		return "", false
	}
	return responses[len(text)%len(responses)], true
}
