package dto

import (
	"time"

	"academy/internal/domain/enrollment"
)

// EnrollmentDTO is the transport representation of an enrollment.
type EnrollmentDTO struct {
	ID             uint       `json:"id"`
	EmployeeID     uint       `json:"employee_id"`
	CourseID       uint       `json:"course_id"`
	EnrollmentType string     `json:"enrollment_type"`
	Status         string     `json:"status"`
	AssignmentType string     `json:"assignment_type"`
	EnrolledDate   time.Time  `json:"enrolled_date"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	CompletedDate  *time.Time `json:"completed_date,omitempty"`
	Progress       int        `json:"progress"`
	AssignedBy     string     `json:"assigned_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// FromEnrollment maps an enrollment entity to its transport form.
func FromEnrollment(e *enrollment.Enrollment) *EnrollmentDTO {
	return &EnrollmentDTO{
		ID:             e.ID(),
		EmployeeID:     e.EmployeeID(),
		CourseID:       e.CourseID(),
		EnrollmentType: string(e.EnrollmentType()),
		Status:         string(e.Status()),
		AssignmentType: string(e.AssignmentType()),
		EnrolledDate:   e.EnrolledDate(),
		DueDate:        e.DueDate(),
		CompletedDate:  e.CompletedDate(),
		Progress:       e.Progress(),
		AssignedBy:     e.AssignedBy(),
		CreatedAt:      e.CreatedAt(),
	}
}

// FromEnrollments maps a slice of enrollment entities.
func FromEnrollments(enrollments []*enrollment.Enrollment) []*EnrollmentDTO {
	out := make([]*EnrollmentDTO, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, FromEnrollment(e))
	}
	return out
}
