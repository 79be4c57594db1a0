package dto

import (
	"time"

	"academy/internal/domain/course"
)

// CourseDTO is the transport representation of a course.
type CourseDTO struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Category      string     `json:"category,omitempty"`
	DurationHours *int       `json:"duration_hours,omitempty"`
	Status        string     `json:"status"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	CreatedBy     string     `json:"created_by,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// FromCourse maps a course entity to its transport form.
func FromCourse(c *course.Course) *CourseDTO {
	return &CourseDTO{
		ID:            c.ID(),
		Title:         c.Title(),
		Description:   c.Description(),
		Category:      c.Category(),
		DurationHours: c.DurationHours(),
		Status:        string(c.Status()),
		PublishedAt:   c.PublishedAt(),
		CreatedBy:     c.CreatedBy(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}

// FromCourses maps a slice of course entities.
func FromCourses(courses []*course.Course) []*CourseDTO {
	out := make([]*CourseDTO, 0, len(courses))
	for _, c := range courses {
		out = append(out, FromCourse(c))
	}
	return out
}
