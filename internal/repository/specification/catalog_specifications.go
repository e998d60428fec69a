package specification

import (
	"gorm.io/gorm"
)

// ByCourseCode filters on the normalized course code.
type ByCourseCode struct {
	Code string
}

func (s ByCourseCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("course_code = ?", s.Code)
}

// NameContains performs a case-insensitive substring match on the
// name column, used as the first pass of fuzzy instructor lookup.
type NameContains struct {
	Term string
}

func (s NameContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name ILIKE ?", "%"+s.Term+"%")
}
