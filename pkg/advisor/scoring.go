package advisor

import (
	"sort"
	"strings"
)

// Scheduling priority tiers. The ordering contract is:
// compulsory > track elective > everything else, and within a tier
// lower-level courses come first. Ties break by course code ascending
// so plans are deterministic.
// Tier bases sit far enough apart that no level penalty (at most
// levelWeight*10) can push a course into the tier below it.
const (
	tierCompulsory = 3000
	tierElective   = 2000
	tierOther      = 1000

	levelWeight = 10
)

// PriorityScore ranks a course for greedy semester scheduling. Higher
// scores are scheduled first.
func PriorityScore(course *Course, allCompulsory, trackElectives CodeSet) int {
	level := courseLevel(course.Code)

	switch {
	case allCompulsory.Has(course.Code):
		return tierCompulsory - level*levelWeight
	case trackElectives.Has(course.Code):
		return tierElective - level*levelWeight
	default:
		return tierOther - level*levelWeight
	}
}

// courseLevel extracts the first digit of the numeric portion of a
// course code ("CS323" -> 3). Codes without digits rank last.
func courseLevel(code string) int {
	idx := strings.IndexFunc(code, func(r rune) bool { return r >= '0' && r <= '9' })
	if idx < 0 {
		return 9
	}
	level := int(code[idx] - '0')
	if !isPriorityPrefix(code) {
		// Service departments sit behind core departments of the same level.
		return level + 1
	}
	return level
}

func isPriorityPrefix(code string) bool {
	for _, p := range priorityPrefixes {
		if strings.HasPrefix(code, p) {
			return true
		}
	}
	return false
}

// sortByPriority orders courses by descending score, then by code.
func sortByPriority(courses []*Course, allCompulsory, trackElectives CodeSet) {
	sort.Slice(courses, func(i, j int) bool {
		si := PriorityScore(courses[i], allCompulsory, trackElectives)
		sj := PriorityScore(courses[j], allCompulsory, trackElectives)
		if si != sj {
			return si > sj
		}
		return courses[i].Code < courses[j].Code
	})
}
