package advisor

// Course is an immutable catalog entry. Prereqs may reference codes
// that do not exist in the catalog; those are treated as unmet.
type Course struct {
	Code        string
	Name        string
	CreditHours int
	Description string
	Prereqs     CodeSet
}

// Prerequisite pairs a prerequisite code with its display name, when
// the catalog knows one.
type Prerequisite struct {
	Code string
	Name string
}

// Instructor is an immutable catalog entry for staff lookups.
type Instructor struct {
	Name           string
	Title          string
	OfficeLocation string
	Email          string
	Phone          string
	Status         string
}

// Catalog is an in-memory snapshot of the course catalog, keyed by
// normalized course code. It is loaded once per request and never
// mutated by advisory computations.
type Catalog map[string]*Course

// TrackRequirements holds the compulsory and elective course sets of a
// single track.
type TrackRequirements struct {
	Compulsory CodeSet
	Electives  CodeSet
}

// TrackAttributes is the full track configuration: the compulsory set
// shared by all tracks plus per-track requirements.
type TrackAttributes struct {
	CommonCompulsory CodeSet
	Tracks           map[string]TrackRequirements
}

// AllCompulsory returns common plus track-specific compulsory courses
// for the given track.
func (t *TrackAttributes) AllCompulsory(track string) CodeSet {
	return t.CommonCompulsory.Union(t.Tracks[track].Compulsory)
}

// ElectivesFor returns the elective set for the given track.
func (t *TrackAttributes) ElectivesFor(track string) CodeSet {
	return t.Tracks[track].Electives
}

// AllElectives returns the union of every track's electives, used for
// the graduation elective count.
func (t *TrackAttributes) AllElectives() CodeSet {
	out := make(CodeSet)
	for _, reqs := range t.Tracks {
		for c := range reqs.Electives {
			out[c] = struct{}{}
		}
	}
	return out
}
