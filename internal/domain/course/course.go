package course

import (
	"fmt"
	"strings"
	"time"
)

// Status is the course lifecycle state. Only PUBLISHED courses are eligible
// for rule-based enrollment.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusArchived  Status = "ARCHIVED"
)

// ValidStatuses enumerates the accepted course statuses.
var ValidStatuses = map[Status]bool{
	StatusDraft:     true,
	StatusPublished: true,
	StatusArchived:  true,
}

// Course is the training content employees get enrolled into. The assignment
// engine treats it as a target; content authoring lives elsewhere.
type Course struct {
	id            uint
	title         string
	description   string
	category      string
	durationHours *int
	status        Status
	publishedAt   *time.Time
	createdBy     string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewCourse creates a draft course.
func NewCourse(title, description, category string, durationHours *int, createdBy string) (*Course, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("course title is required")
	}
	if durationHours != nil && *durationHours < 0 {
		return nil, fmt.Errorf("duration cannot be negative")
	}

	now := time.Now().UTC()
	return &Course{
		title:         strings.TrimSpace(title),
		description:   description,
		category:      strings.TrimSpace(category),
		durationHours: durationHours,
		status:        StatusDraft,
		createdBy:     createdBy,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructParams carries the full persisted state of a course.
type ReconstructParams struct {
	ID            uint
	Title         string
	Description   string
	Category      string
	DurationHours *int
	Status        Status
	PublishedAt   *time.Time
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Reconstruct rebuilds a course from persistence.
func Reconstruct(p ReconstructParams) (*Course, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("course ID cannot be zero")
	}
	if !ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid course status: %s", p.Status)
	}

	return &Course{
		id:            p.ID,
		title:         p.Title,
		description:   p.Description,
		category:      p.Category,
		durationHours: p.DurationHours,
		status:        p.Status,
		publishedAt:   p.PublishedAt,
		createdBy:     p.CreatedBy,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}, nil
}

// SetID assigns the database identity after insert.
func (c *Course) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("course ID already set")
	}
	if id == 0 {
		return fmt.Errorf("course ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Course) ID() uint                { return c.id }
func (c *Course) Title() string           { return c.title }
func (c *Course) Description() string     { return c.description }
func (c *Course) Category() string        { return c.category }
func (c *Course) DurationHours() *int     { return c.durationHours }
func (c *Course) Status() Status          { return c.status }
func (c *Course) PublishedAt() *time.Time { return c.publishedAt }
func (c *Course) CreatedBy() string       { return c.createdBy }
func (c *Course) CreatedAt() time.Time    { return c.createdAt }
func (c *Course) UpdatedAt() time.Time    { return c.updatedAt }

// IsPublished reports whether the course can receive enrollments.
func (c *Course) IsPublished() bool {
	return c.status == StatusPublished
}

// Publish makes the course live. Archived courses must be restored to draft
// before publishing again.
func (c *Course) Publish() error {
	if c.status == StatusArchived {
		return fmt.Errorf("cannot publish an archived course")
	}
	if c.status == StatusPublished {
		return nil
	}
	now := time.Now().UTC()
	c.status = StatusPublished
	c.publishedAt = &now
	c.updatedAt = now
	return nil
}

// Unpublish returns the course to draft. Existing enrollments are untouched.
func (c *Course) Unpublish() {
	c.status = StatusDraft
	c.updatedAt = time.Now().UTC()
}

// Archive retires the course.
func (c *Course) Archive() {
	c.status = StatusArchived
	c.updatedAt = time.Now().UTC()
}

// UpdateDetails replaces the course's descriptive fields.
func (c *Course) UpdateDetails(title, description, category string, durationHours *int) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("course title is required")
	}
	if durationHours != nil && *durationHours < 0 {
		return fmt.Errorf("duration cannot be negative")
	}
	c.title = strings.TrimSpace(title)
	c.description = description
	c.category = strings.TrimSpace(category)
	c.durationHours = durationHours
	c.updatedAt = time.Now().UTC()
	return nil
}
