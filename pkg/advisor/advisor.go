package advisor

import (
	"fmt"
	"sort"
	"strings"
)

// Config carries the advisory policy knobs. Values are configuration,
// not negotiable business logic: the capstone gate and credit cap in
// particular are hard faculty rules.
type Config struct {
	MaxSemesterCredits   int
	SeniorHoursThreshold int
	GraduationHours      int
	LowCreditWarning     int
	ElectiveTarget       int
}

// DefaultConfig returns the faculty defaults.
func DefaultConfig() Config {
	return Config{
		MaxSemesterCredits:   18,
		SeniorHoursThreshold: 90,
		GraduationHours:      145,
		LowCreditWarning:     12,
		ElectiveTarget:       4,
	}
}

// Advisor evaluates a student's standing against the catalog. All
// methods are pure: they read the snapshot and the passed set and
// never mutate either.
type Advisor struct {
	cfg Config
}

func New(cfg Config) *Advisor {
	return &Advisor{cfg: cfg}
}

// EligibilityVerdict is the outcome of a prerequisite check.
type EligibilityVerdict struct {
	CourseCode string
	CourseName string
	Found      bool
	Eligible   bool
	Missing    []string // sorted, remedials excluded
}

// CheckEligibility reports whether the passed set satisfies the
// target's prerequisites. Unknown codes yield a terminal not-found
// verdict.
func (a *Advisor) CheckEligibility(catalog Catalog, targetCode string, passed CodeSet) *EligibilityVerdict {
	course, ok := catalog[targetCode]
	if !ok {
		return &EligibilityVerdict{CourseCode: targetCode}
	}

	var missing []string
	for code := range course.Prereqs {
		if passed.Has(code) || RemedialCodes.Has(code) {
			continue
		}
		missing = append(missing, code)
	}
	sort.Strings(missing)

	return &EligibilityVerdict{
		CourseCode: targetCode,
		CourseName: course.Name,
		Found:      true,
		Eligible:   len(missing) == 0,
		Missing:    missing,
	}
}

func (v *EligibilityVerdict) Render() string {
	if !v.Found {
		return fmt.Sprintf("Course **%s** not found.", v.CourseCode)
	}
	if v.Eligible {
		return fmt.Sprintf("✅ **Eligible!** You can take **%s** (%s).", v.CourseCode, v.CourseName)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "❌ **Not Eligible** for %s. You need to pass:\n", v.CourseCode)
	for _, m := range v.Missing {
		fmt.Fprintf(&b, "- %s\n", m)
	}
	return b.String()
}

// PlanEntry is one scheduled course with its requirement tags.
type PlanEntry struct {
	Code          string
	Name          string
	CreditHours   int
	TrackRequired bool
	Compulsory    bool
	Elective      bool
}

// SemesterPlan is the greedy schedule produced for one semester.
type SemesterPlan struct {
	Track          string
	CompletedHours int
	TotalCredits   int
	Courses        []PlanEntry
	NothingLeft    bool
	LowCredit      bool

	// CapstonesPending lists capstone courses that are otherwise open
	// but gated behind senior standing; SeniorThreshold is the hour
	// requirement they wait on.
	CapstonesPending []string
	SeniorThreshold  int
}

// GeneratePlan builds a semester schedule for the track. Courses are
// ranked by PriorityScore and packed first-fit under the credit cap; a
// course that would overflow is skipped, not blocking, so smaller
// courses further down the ranking still get a slot.
func (a *Advisor) GeneratePlan(catalog Catalog, attrs *TrackAttributes, track string, passed CodeSet) *SemesterPlan {
	allCompulsory := attrs.AllCompulsory(track)
	trackElectives := attrs.ElectivesFor(track)
	trackReqs := attrs.Tracks[track].Compulsory

	completedHours := totalHours(catalog, passed)

	var eligible []*Course
	var capstonesPending []string
	for code, course := range catalog {
		if passed.Has(code) {
			continue
		}
		if blocked(course, passed) {
			continue
		}
		// Capstones wait for senior standing.
		if CapstoneCodes.Has(code) && completedHours < a.cfg.SeniorHoursThreshold {
			capstonesPending = append(capstonesPending, code)
			continue
		}
		eligible = append(eligible, course)
	}

	sortByPriority(eligible, allCompulsory, trackElectives)
	sort.Strings(capstonesPending)

	plan := &SemesterPlan{
		Track:            track,
		CompletedHours:   completedHours,
		CapstonesPending: capstonesPending,
		SeniorThreshold:  a.cfg.SeniorHoursThreshold,
	}
	for _, course := range eligible {
		if plan.TotalCredits+course.CreditHours > a.cfg.MaxSemesterCredits {
			continue
		}
		plan.Courses = append(plan.Courses, PlanEntry{
			Code:          course.Code,
			Name:          course.Name,
			CreditHours:   course.CreditHours,
			TrackRequired: trackReqs.Has(course.Code),
			Compulsory:    allCompulsory.Has(course.Code),
			Elective:      trackElectives.Has(course.Code),
		})
		plan.TotalCredits += course.CreditHours
	}

	plan.NothingLeft = len(eligible) == 0
	plan.LowCredit = plan.TotalCredits < a.cfg.LowCreditWarning
	return plan
}

func (p *SemesterPlan) Render() string {
	if p.NothingLeft {
		if len(p.CapstonesPending) > 0 {
			return fmt.Sprintf("🎓 Only your capstone courses (%s) remain for **%s**, and they unlock at %d completed hours. You are at ~%d, keep going!",
				strings.Join(p.CapstonesPending, ", "), p.Track, p.SeniorThreshold, p.CompletedHours)
		}
		return fmt.Sprintf("🎓 Nothing left to schedule for **%s** — every course you are eligible for is already passed. Well done!", p.Track)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "🎓 **Semester Plan for %s**\n(Completed Hours: ~%d)\n\n**Suggested Schedule (%d Cr):**\n", p.Track, p.CompletedHours, p.TotalCredits)
	for _, c := range p.Courses {
		tag := ""
		switch {
		case c.TrackRequired:
			tag = " (Track Req)"
		case c.Elective:
			tag = " (Elective)"
		}
		fmt.Fprintf(&b, "- **%s**: %s (%d Cr)%s\n", c.Code, c.Name, c.CreditHours, tag)
	}
	if p.LowCredit {
		b.WriteString("\n⚠️ Credits are low. Finish prerequisites first.")
	}
	return b.String()
}

// GraduationReport summarizes progress toward the degree.
type GraduationReport struct {
	Track             string
	TotalHours        int
	RequiredHours     int
	MissingCompulsory []Prerequisite // sorted by code
	ElectivesPassed   int
	ElectiveTarget    int
}

// missingDisplayCap bounds how many missing compulsory courses the
// rendered report lists before collapsing into an overflow count.
const missingDisplayCap = 10

// CheckGraduation accounts passed hours and remaining compulsory
// courses for the track. Only codes present in the catalog count.
func (a *Advisor) CheckGraduation(catalog Catalog, attrs *TrackAttributes, track string, passed CodeSet) *GraduationReport {
	allCompulsory := attrs.AllCompulsory(track)
	allElectives := attrs.AllElectives()

	var missing []Prerequisite
	for code := range allCompulsory {
		if passed.Has(code) || RemedialCodes.Has(code) {
			continue
		}
		course, ok := catalog[code]
		if !ok {
			continue
		}
		missing = append(missing, Prerequisite{Code: code, Name: course.Name})
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i].Code < missing[j].Code })

	electivesPassed := 0
	for code := range passed {
		if allElectives.Has(code) {
			electivesPassed++
		}
	}

	return &GraduationReport{
		Track:             track,
		TotalHours:        totalHours(catalog, passed),
		RequiredHours:     a.cfg.GraduationHours,
		MissingCompulsory: missing,
		ElectivesPassed:   electivesPassed,
		ElectiveTarget:    a.cfg.ElectiveTarget,
	}
}

func (r *GraduationReport) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎓 **Graduation Status (%s)**\n📊 Total Hours: **%d** / %d\n", r.Track, r.TotalHours, r.RequiredHours)
	if len(r.MissingCompulsory) == 0 {
		b.WriteString("✅ All Compulsory Courses Completed!\n")
	} else {
		fmt.Fprintf(&b, "⚠️ **Missing Compulsory Courses (%d):**\n", len(r.MissingCompulsory))
		shown := r.MissingCompulsory
		if len(shown) > missingDisplayCap {
			shown = shown[:missingDisplayCap]
		}
		for _, c := range shown {
			fmt.Fprintf(&b, "- %s: %s\n", c.Code, c.Name)
		}
		if overflow := len(r.MissingCompulsory) - missingDisplayCap; overflow > 0 {
			fmt.Fprintf(&b, "...and %d more.\n", overflow)
		}
	}
	fmt.Fprintf(&b, "\nℹ️ Electives Passed: %d (Target ~%d)", r.ElectivesPassed, r.ElectiveTarget)
	return b.String()
}

// blocked reports whether any real (non-remedial, unpassed)
// prerequisite remains for the course.
func blocked(course *Course, passed CodeSet) bool {
	for code := range course.Prereqs {
		if passed.Has(code) || RemedialCodes.Has(code) {
			continue
		}
		return true
	}
	return false
}

// totalHours sums credit hours of passed courses the catalog knows.
func totalHours(catalog Catalog, passed CodeSet) int {
	total := 0
	for code := range passed {
		if course, ok := catalog[code]; ok {
			total += course.CreditHours
		}
	}
	return total
}
