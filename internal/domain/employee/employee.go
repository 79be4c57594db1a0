package employee

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of an employee record.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// ValidStatuses enumerates the accepted employee statuses.
var ValidStatuses = map[Status]bool{
	StatusActive:   true,
	StatusInactive: true,
}

// EmploymentType categorizes the contractual relationship.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "FULL_TIME"
	EmploymentPartTime   EmploymentType = "PART_TIME"
	EmploymentContractor EmploymentType = "CONTRACTOR"
	EmploymentIntern     EmploymentType = "INTERN"
)

// WorkMode categorizes where the employee works from.
type WorkMode string

const (
	WorkModeOffice WorkMode = "OFFICE"
	WorkModeRemote WorkMode = "REMOTE"
	WorkModeHybrid WorkMode = "HYBRID"
)

// DateFieldNames lists the attributes whose values are calendar dates.
// Ordered comparisons on these fields parse both sides chronologically;
// every other field compares as a raw string.
var DateFieldNames = map[string]bool{
	"date_of_joining": true,
	"date_of_birth":   true,
}

// KnownFields lists every attribute name Field can resolve.
var KnownFields = map[string]bool{
	"employee_id":     true,
	"first_name":      true,
	"last_name":       true,
	"email":           true,
	"department":      true,
	"designation":     true,
	"office_location": true,
	"location":        true,
	"employment_type": true,
	"work_mode":       true,
	"date_of_joining": true,
	"date_of_birth":   true,
}

// DateLayout is the wire format for date-valued attributes.
const DateLayout = "2006-01-02"

// Employee is the directory record the assignment engine matches against.
type Employee struct {
	id             uint
	employeeID     string
	firstName      string
	lastName       string
	email          string
	department     string
	designation    string
	officeLocation string
	employmentType EmploymentType
	workMode       WorkMode
	dateOfJoining  time.Time
	dateOfBirth    *time.Time
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

// NewEmployee creates a new employee record. A business employee ID is
// generated when none is supplied.
func NewEmployee(employeeID, firstName, lastName, email, department, designation string, dateOfJoining time.Time) (*Employee, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, fmt.Errorf("first name is required")
	}
	if strings.TrimSpace(lastName) == "" {
		return nil, fmt.Errorf("last name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	if strings.TrimSpace(department) == "" {
		return nil, fmt.Errorf("department is required")
	}
	if dateOfJoining.IsZero() {
		return nil, fmt.Errorf("date of joining is required")
	}

	if strings.TrimSpace(employeeID) == "" {
		employeeID = "EMP-" + strings.ToUpper(uuid.NewString()[:8])
	}

	now := time.Now().UTC()
	return &Employee{
		employeeID:    employeeID,
		firstName:     strings.TrimSpace(firstName),
		lastName:      strings.TrimSpace(lastName),
		email:         strings.ToLower(strings.TrimSpace(email)),
		department:    strings.TrimSpace(department),
		designation:   strings.TrimSpace(designation),
		dateOfJoining: dateOfJoining,
		status:        StatusActive,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructParams carries the full persisted state of an employee.
type ReconstructParams struct {
	ID             uint
	EmployeeID     string
	FirstName      string
	LastName       string
	Email          string
	Department     string
	Designation    string
	OfficeLocation string
	EmploymentType EmploymentType
	WorkMode       WorkMode
	DateOfJoining  time.Time
	DateOfBirth    *time.Time
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Reconstruct rebuilds an employee from persistence.
func Reconstruct(p ReconstructParams) (*Employee, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("employee ID cannot be zero")
	}
	if !ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid employee status: %s", p.Status)
	}

	return &Employee{
		id:             p.ID,
		employeeID:     p.EmployeeID,
		firstName:      p.FirstName,
		lastName:       p.LastName,
		email:          p.Email,
		department:     p.Department,
		designation:    p.Designation,
		officeLocation: p.OfficeLocation,
		employmentType: p.EmploymentType,
		workMode:       p.WorkMode,
		dateOfJoining:  p.DateOfJoining,
		dateOfBirth:    p.DateOfBirth,
		status:         p.Status,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}, nil
}

// SetID assigns the database identity after insert.
func (e *Employee) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("employee ID already set")
	}
	if id == 0 {
		return fmt.Errorf("employee ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Employee) ID() uint                       { return e.id }
func (e *Employee) EmployeeID() string             { return e.employeeID }
func (e *Employee) FirstName() string              { return e.firstName }
func (e *Employee) LastName() string               { return e.lastName }
func (e *Employee) Email() string                  { return e.email }
func (e *Employee) Department() string             { return e.department }
func (e *Employee) Designation() string            { return e.designation }
func (e *Employee) OfficeLocation() string         { return e.officeLocation }
func (e *Employee) EmploymentType() EmploymentType { return e.employmentType }
func (e *Employee) WorkMode() WorkMode             { return e.workMode }
func (e *Employee) DateOfJoining() time.Time       { return e.dateOfJoining }
func (e *Employee) DateOfBirth() *time.Time        { return e.dateOfBirth }
func (e *Employee) Status() Status                 { return e.status }
func (e *Employee) CreatedAt() time.Time           { return e.createdAt }
func (e *Employee) UpdatedAt() time.Time           { return e.updatedAt }

// IsActive reports whether the employee is an active directory member.
func (e *Employee) IsActive() bool {
	return e.status == StatusActive
}

// SetProfile updates the mutable directory attributes.
func (e *Employee) SetProfile(department, designation, officeLocation string, employmentType EmploymentType, workMode WorkMode) {
	if department != "" {
		e.department = department
	}
	if designation != "" {
		e.designation = designation
	}
	if officeLocation != "" {
		e.officeLocation = officeLocation
	}
	if employmentType != "" {
		e.employmentType = employmentType
	}
	if workMode != "" {
		e.workMode = workMode
	}
	e.updatedAt = time.Now().UTC()
}

// SetDateOfBirth records the optional birth date.
func (e *Employee) SetDateOfBirth(dob *time.Time) {
	e.dateOfBirth = dob
	e.updatedAt = time.Now().UTC()
}

// Deactivate marks the employee as no longer active in the directory.
func (e *Employee) Deactivate() {
	e.status = StatusInactive
	e.updatedAt = time.Now().UTC()
}

// Field resolves a symbolic attribute name to its string value. The second
// return is false for unknown field names. Date fields render as 2006-01-02;
// an unset optional date resolves to the empty string.
func (e *Employee) Field(name string) (string, bool) {
	switch name {
	case "employee_id":
		return e.employeeID, true
	case "first_name":
		return e.firstName, true
	case "last_name":
		return e.lastName, true
	case "email":
		return e.email, true
	case "department":
		return e.department, true
	case "designation":
		return e.designation, true
	case "office_location", "location":
		return e.officeLocation, true
	case "employment_type":
		return string(e.employmentType), true
	case "work_mode":
		return string(e.workMode), true
	case "date_of_joining":
		return e.dateOfJoining.Format(DateLayout), true
	case "date_of_birth":
		if e.dateOfBirth == nil {
			return "", true
		}
		return e.dateOfBirth.Format(DateLayout), true
	default:
		return "", false
	}
}

// FullName returns the display name.
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.firstName + " " + e.lastName)
}
