package enrollment

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrAlreadyEnrolled is returned by the store when an insert collides with
// the (employee, course) uniqueness constraint. The constraint is the
// authoritative deduplication mechanism; callers treat this as a skip.
var ErrAlreadyEnrolled = errors.New("employee already enrolled in course")

// Type distinguishes mandatory from optional enrollments.
type Type string

const (
	TypeMandatory Type = "MANDATORY"
	TypeOptional  Type = "OPTIONAL"
)

// ValidTypes enumerates the accepted enrollment types.
var ValidTypes = map[Type]bool{
	TypeMandatory: true,
	TypeOptional:  true,
}

// ParseType validates and normalizes an enrollment type string.
func ParseType(value string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(value)))
	if !ValidTypes[t] {
		return "", fmt.Errorf("invalid enrollment type: %s", value)
	}
	return t, nil
}

// Status tracks learner progress through a course.
type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusOverdue    Status = "OVERDUE"
)

// ValidStatuses enumerates the accepted enrollment statuses.
var ValidStatuses = map[Status]bool{
	StatusNotStarted: true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusOverdue:    true,
}

// AssignmentType records how the enrollment came to exist.
type AssignmentType string

const (
	AssignmentRuleBased    AssignmentType = "RULE_BASED"
	AssignmentManual       AssignmentType = "MANUAL"
	AssignmentSelfEnrolled AssignmentType = "SELF_ENROLLED"
)

// ValidAssignmentTypes enumerates the accepted assignment types.
var ValidAssignmentTypes = map[AssignmentType]bool{
	AssignmentRuleBased:    true,
	AssignmentManual:       true,
	AssignmentSelfEnrolled: true,
}

// Enrollment links one employee to one course. The store guarantees
// uniqueness on (employee, course).
type Enrollment struct {
	id             uint
	employeeID     uint
	courseID       uint
	enrollmentType Type
	status         Status
	assignmentType AssignmentType
	enrolledDate   time.Time
	dueDate        *time.Time
	completedDate  *time.Time
	progress       int
	assignedBy     string
	createdAt      time.Time
	updatedAt      time.Time
}

// NewFromRule creates the enrollment a rule execution produces: rule-based
// assignment, not started, zero progress.
func NewFromRule(employeeID, courseID uint, enrollmentType Type, enrolledDate time.Time, dueDate *time.Time, assignedBy string) (*Enrollment, error) {
	if employeeID == 0 {
		return nil, fmt.Errorf("employee ID is required")
	}
	if courseID == 0 {
		return nil, fmt.Errorf("course ID is required")
	}
	if !ValidTypes[enrollmentType] {
		return nil, fmt.Errorf("invalid enrollment type: %s", enrollmentType)
	}

	now := time.Now().UTC()
	return &Enrollment{
		employeeID:     employeeID,
		courseID:       courseID,
		enrollmentType: enrollmentType,
		status:         StatusNotStarted,
		assignmentType: AssignmentRuleBased,
		enrolledDate:   enrolledDate,
		dueDate:        dueDate,
		progress:       0,
		assignedBy:     assignedBy,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructParams carries the full persisted state of an enrollment.
type ReconstructParams struct {
	ID             uint
	EmployeeID     uint
	CourseID       uint
	EnrollmentType Type
	Status         Status
	AssignmentType AssignmentType
	EnrolledDate   time.Time
	DueDate        *time.Time
	CompletedDate  *time.Time
	Progress       int
	AssignedBy     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Reconstruct rebuilds an enrollment from persistence.
func Reconstruct(p ReconstructParams) (*Enrollment, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("enrollment ID cannot be zero")
	}
	if !ValidTypes[p.EnrollmentType] {
		return nil, fmt.Errorf("invalid enrollment type: %s", p.EnrollmentType)
	}
	if !ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid enrollment status: %s", p.Status)
	}
	if !ValidAssignmentTypes[p.AssignmentType] {
		return nil, fmt.Errorf("invalid assignment type: %s", p.AssignmentType)
	}

	return &Enrollment{
		id:             p.ID,
		employeeID:     p.EmployeeID,
		courseID:       p.CourseID,
		enrollmentType: p.EnrollmentType,
		status:         p.Status,
		assignmentType: p.AssignmentType,
		enrolledDate:   p.EnrolledDate,
		dueDate:        p.DueDate,
		completedDate:  p.CompletedDate,
		progress:       p.Progress,
		assignedBy:     p.AssignedBy,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}, nil
}

// SetID assigns the database identity after insert.
func (e *Enrollment) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("enrollment ID already set")
	}
	if id == 0 {
		return fmt.Errorf("enrollment ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Enrollment) ID() uint                       { return e.id }
func (e *Enrollment) EmployeeID() uint               { return e.employeeID }
func (e *Enrollment) CourseID() uint                 { return e.courseID }
func (e *Enrollment) EnrollmentType() Type           { return e.enrollmentType }
func (e *Enrollment) Status() Status                 { return e.status }
func (e *Enrollment) AssignmentType() AssignmentType { return e.assignmentType }
func (e *Enrollment) EnrolledDate() time.Time        { return e.enrolledDate }
func (e *Enrollment) DueDate() *time.Time            { return e.dueDate }
func (e *Enrollment) CompletedDate() *time.Time      { return e.completedDate }
func (e *Enrollment) Progress() int                  { return e.progress }
func (e *Enrollment) AssignedBy() string             { return e.assignedBy }
func (e *Enrollment) CreatedAt() time.Time           { return e.createdAt }
func (e *Enrollment) UpdatedAt() time.Time           { return e.updatedAt }
