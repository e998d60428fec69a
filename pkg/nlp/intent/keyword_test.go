package intent

import "testing"

func TestKeywordResolver(t *testing.T) {
	r := NewKeywordResolver()

	tests := []struct {
		text string
		want string
	}{
		{"can I take CS116?", CheckEligibility},
		{"am I eligible for CS222", CheckEligibility},
		{"when will I graduate", GraduationCheck},
		{"make me a schedule", MakeSchedule},
		{"what are the prereqs of CS323", AskPrereqs},
		{"who teaches algorithms", AskInstructorInfo},
		{"where is the office of Dr. Smith", AskInstructorInfo},
		{"tell me about CS116", AskCourseInfo},
		{"yes", Affirm},
		{"ok", Affirm},
		{"no", Deny},
		{"nope", Deny},
		{"hello", Greeting},
		{"hi", Greeting},
		{"thanks a lot", Thanks},
		{"goodbye", Goodbye},
		{"xyzzy", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := r.Resolve(tt.text); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

// Short cues must not fire inside longer words.
func TestKeywordResolverNoSubstringFalsePositives(t *testing.T) {
	r := NewKeywordResolver()

	tests := []struct {
		text    string
		avoided string
	}{
		{"I know nothing about this", Deny},    // "no" inside "know"
		{"the booking failed", Affirm},         // "ok" inside "booking"
		{"this course is hard", Affirm},        // no cue at all
		{"the history of computing", Greeting}, // "hi" inside "history"
	}

	for _, tt := range tests {
		if got := r.Resolve(tt.text); got == tt.avoided {
			t.Errorf("Resolve(%q) = %q, false positive", tt.text, got)
		}
	}
}

func TestKeywordResolverDeterministic(t *testing.T) {
	r := NewKeywordResolver()
	text := "can I take CS116 before I graduate?"
	first := r.Resolve(text)
	for i := 0; i < 5; i++ {
		if got := r.Resolve(text); got != first {
			t.Fatalf("Resolve not deterministic: %q vs %q", got, first)
		}
	}
}
