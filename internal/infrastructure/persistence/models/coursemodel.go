package models

import (
	"time"

	"academy/internal/shared/constants"
)

// CourseModel is the persistence model for courses.
type CourseModel struct {
	ID            uint   `gorm:"primarykey"`
	Title         string `gorm:"not null;size:255"`
	Description   string `gorm:"type:text"`
	Category      string `gorm:"size:100;index:idx_courses_category"`
	DurationHours *int
	Status        string `gorm:"not null;default:DRAFT;size:20;index:idx_courses_status"`
	PublishedAt   *time.Time
	CreatedBy     string `gorm:"size:100"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (CourseModel) TableName() string {
	return constants.TableCourses
}
