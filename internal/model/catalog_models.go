package model

// Course maps the courses table. Codes are normalized (uppercase, no
// separators) at seed time.
type Course struct {
	Code        string `gorm:"column:course_code;primaryKey;type:varchar(16)"`
	Name        string `gorm:"column:course_name;type:text;not null"`
	CreditHours int    `gorm:"not null"`
	Description string `gorm:"type:text"`
}

func (Course) TableName() string {
	return "courses"
}

// Prerequisite maps the prerequisites relation. PrerequisiteCode may
// reference a code without a courses row; such prerequisites are
// treated as unmet.
type Prerequisite struct {
	CourseCode       string `gorm:"primaryKey;type:varchar(16);index"`
	PrerequisiteCode string `gorm:"primaryKey;type:varchar(16)"`
}

func (Prerequisite) TableName() string {
	return "prerequisites"
}

// Instructor maps the instructors table.
type Instructor struct {
	Id             uint   `gorm:"primaryKey;autoIncrement"`
	Name           string `gorm:"type:text;not null;index"`
	Title          string `gorm:"type:text"`
	OfficeLocation string `gorm:"type:text"`
	Phone          string `gorm:"type:text"`
	Email          string `gorm:"type:text"`
	Status         string `gorm:"type:text"`
}

func (Instructor) TableName() string {
	return "instructors"
}

// TrackRequirement maps the track_requirements table. Common rows
// carry an empty track.
type TrackRequirement struct {
	Id         uint   `gorm:"primaryKey;autoIncrement"`
	Track      string `gorm:"type:varchar(32);index"`
	CourseCode string `gorm:"type:varchar(16);not null"`
	Kind       string `gorm:"type:varchar(16);not null"`
}

func (TrackRequirement) TableName() string {
	return "track_requirements"
}
