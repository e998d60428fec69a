package entity

// Course is a catalog course with its prerequisite codes attached.
type Course struct {
	Code        string
	Name        string
	CreditHours int
	Description string
	Prereqs     []string
}

// Instructor is a staff member reachable through fuzzy lookup.
type Instructor struct {
	Id             uint
	Name           string
	Title          string
	OfficeLocation string
	Phone          string
	Email          string
	Status         string
}

// Prerequisite links a course to one of its prerequisites, carrying
// the prerequisite's display name when the catalog knows it.
type Prerequisite struct {
	CourseCode       string
	PrerequisiteCode string
	PrerequisiteName string
}

// TrackRequirement is one row of track configuration: a course that is
// common-compulsory, track-compulsory or a track elective.
type TrackRequirement struct {
	Id         uint
	Track      string // empty for common-compulsory rows
	CourseCode string
	Kind       string // "common" | "compulsory" | "elective"
}

const (
	TrackRequirementCommon     = "common"
	TrackRequirementCompulsory = "compulsory"
	TrackRequirementElective   = "elective"
)
