package extractor

import (
	"regexp"
	"strings"
)

// Extractor pulls normalized course codes, track names and instructor
// search terms out of free text. It is pure regex; the ML intent layer
// lives in pkg/nlp/intent.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

var (
	// Department-anchored pattern, tolerant of a space between the
	// prefix and the number ("cs 116"). The alternation keeps the
	// remedial and foundation numbers matchable.
	courseCodePattern = regexp.MustCompile(`(?i)\b(cs|ce|ee|ie|math|engl|arb|gerl|mils|ne)\s*(\d{3,5}|0099|0098|100)\b`)

	// Generic pattern used when scanning for every code in a message.
	anyCodePattern = regexp.MustCompile(`\b[A-Z]{2,4}\s?\d{3,5}\b`)

	// Guard for the strip-everything fallback so "hello" does not
	// normalize into a fake course code.
	normalizedShape = regexp.MustCompile(`^[A-Z]{2,4}\d{3,5}$`)

	nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

	honorificPattern = regexp.MustCompile(`(?i)(dr\.|prof\.|dr|prof)\s*([a-z\-' ]+)`)
)

// ExtractCourseCode returns the first normalized course code found in
// the text, or "" when none is present. When a message mentions
// several codes the first one wins; that is the documented policy for
// ambiguous messages, not an error.
func (e *Extractor) ExtractCourseCode(text string) string {
	if m := courseCodePattern.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(m[1]) + m[2]
	}
	candidate := strings.ToUpper(nonAlnum.ReplaceAllString(text, ""))
	if normalizedShape.MatchString(candidate) {
		return candidate
	}
	return ""
}

// ExtractAllCourseCodes returns every course code in the text,
// normalized and deduplicated, in order of first appearance.
func (e *Extractor) ExtractAllCourseCodes(text string) []string {
	matches := anyCodePattern.FindAllString(strings.ToUpper(text), -1)
	seen := make(map[string]struct{}, len(matches))
	var codes []string
	for _, m := range matches {
		code := nonAlnum.ReplaceAllString(m, "")
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes
}

// ExtractTrack maps free text onto one of the fixed track names, or ""
// when no track keyword is present.
func (e *Extractor) ExtractTrack(text string) string {
	norm := strings.ToLower(text)
	switch {
	case strings.Contains(norm, "cyber"):
		return "Cybersecurity"
	case strings.Contains(norm, "data"):
		return "Data Science"
	case strings.Contains(norm, "general"):
		return "General"
	}
	return ""
}

// ExtractInstructorQuery strips a leading honorific ("Dr.", "Prof.")
// and returns the name portion; without an honorific the whole text is
// the search term.
func (e *Extractor) ExtractInstructorQuery(text string) string {
	if m := honorificPattern.FindStringSubmatch(strings.ToLower(text)); m != nil {
		return strings.TrimSpace(m[2])
	}
	return strings.TrimSpace(text)
}
