package advisor

import "testing"

func TestPriorityScoreTierOrdering(t *testing.T) {
	compulsory := NewCodeSet("CS116")
	electives := NewCodeSet("CS201")

	comp := &Course{Code: "CS116"}
	elec := &Course{Code: "CS201"}
	other := &Course{Code: "CS101"}

	sComp := PriorityScore(comp, compulsory, electives)
	sElec := PriorityScore(elec, compulsory, electives)
	sOther := PriorityScore(other, compulsory, electives)

	if sComp <= sElec {
		t.Errorf("compulsory score %d not above elective %d", sComp, sElec)
	}
	if sElec <= sOther {
		t.Errorf("elective score %d not above other %d", sElec, sOther)
	}
}

func TestPriorityScoreTierGapUnconditional(t *testing.T) {
	electives := NewCodeSet("XX901")

	// Deepest possible level penalty: digit 9 plus the service
	// department bump. Even then an elective must outrank any
	// untracked course, including one at level 0.
	deepElective := PriorityScore(&Course{Code: "XX901"}, NewCodeSet(), electives)
	shallowOther := PriorityScore(&Course{Code: "CS016"}, NewCodeSet(), electives)
	if deepElective <= shallowOther {
		t.Errorf("deep elective score %d not above shallow other %d", deepElective, shallowOther)
	}

	compulsory := NewCodeSet("XX901")
	deepCompulsory := PriorityScore(&Course{Code: "XX901"}, compulsory, NewCodeSet())
	shallowElective := PriorityScore(&Course{Code: "CS016"}, NewCodeSet(), NewCodeSet("CS016"))
	if deepCompulsory <= shallowElective {
		t.Errorf("deep compulsory score %d not above shallow elective %d", deepCompulsory, shallowElective)
	}
}

func TestPriorityScoreLevelWithinTier(t *testing.T) {
	compulsory := NewCodeSet("CS116", "CS323")

	junior := PriorityScore(&Course{Code: "CS116"}, compulsory, NewCodeSet())
	senior := PriorityScore(&Course{Code: "CS323"}, compulsory, NewCodeSet())
	if junior <= senior {
		t.Errorf("level 1 score %d not above level 3 score %d", junior, senior)
	}
}

func TestCourseLevel(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"CS116", 1},
		{"CS323", 3},
		{"MATH101", 1},
		{"GERL101", 2}, // service department penalty
		{"MILS100", 2},
		{"NODIGITS", 9},
	}
	for _, tt := range tests {
		if got := courseLevel(tt.code); got != tt.want {
			t.Errorf("courseLevel(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestSortByPriorityDeterministic(t *testing.T) {
	compulsory := NewCodeSet("CS222")
	electives := NewCodeSet("GERL101")

	build := func() []*Course {
		return []*Course{
			{Code: "GERL101"},
			{Code: "CS115"},
			{Code: "CS114"},
			{Code: "CS222"},
		}
	}

	a, b := build(), build()
	sortByPriority(a, compulsory, electives)
	sortByPriority(b, compulsory, electives)

	want := []string{"CS222", "GERL101", "CS114", "CS115"}
	for i := range want {
		if a[i].Code != want[i] {
			t.Fatalf("order[%d] = %s, want %s", i, a[i].Code, want[i])
		}
		if a[i].Code != b[i].Code {
			t.Errorf("sort not deterministic at %d: %s vs %s", i, a[i].Code, b[i].Code)
		}
	}
}
