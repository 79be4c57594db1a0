package models

import (
	"time"

	"academy/internal/shared/constants"
)

// EnrollmentModel is the persistence model for enrollments. The composite
// unique index on (employee_id, course_id) is the authoritative guard
// against duplicate enrollment.
type EnrollmentModel struct {
	ID             uint   `gorm:"primarykey"`
	EmployeeID     uint   `gorm:"not null;uniqueIndex:idx_enrollments_employee_course"`
	CourseID       uint   `gorm:"not null;uniqueIndex:idx_enrollments_employee_course"`
	EnrollmentType string `gorm:"not null;size:20"`
	Status         string `gorm:"not null;default:NOT_STARTED;size:20;index:idx_enrollments_status"`
	AssignmentType string `gorm:"not null;size:20"`
	EnrolledDate   time.Time
	DueDate        *time.Time
	CompletedDate  *time.Time
	Progress       int    `gorm:"not null;default:0"`
	AssignedBy     string `gorm:"size:100"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (EnrollmentModel) TableName() string {
	return constants.TableEnrollments
}
