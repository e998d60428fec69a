package intent

import "context"

// Intent tags produced by the classifier. The advisory tags drive the
// dialogue router's dispatch table; the smalltalk tags answer from the
// canned response table.
const (
	CheckEligibility  = "check_eligibility"
	MakeSchedule      = "make_schedule"
	RequestAdvice     = "request_advice"
	GraduationCheck   = "graduation_check"
	AskCourseInfo     = "ask_course_info"
	AskPrereqs        = "ask_prereqs"
	AskInstructorInfo = "ask_instructor_info"

	Affirm = "affirm"
	Deny   = "deny"

	Greeting     = "greeting"
	Goodbye      = "goodbye"
	Thanks       = "thanks"
	Joke         = "joke"
	Capabilities = "capabilities"

	Unknown = "unknown"
)

// Classifier maps free text to an intent tag with a confidence score
// in [0,1]. Implementations are external model runtimes behind HTTP;
// callers must treat low-confidence tags as untrusted.
type Classifier interface {
	Classify(ctx context.Context, text string) (tag string, confidence float64, err error)
}
