package dto

import (
	"time"

	"academy/internal/domain/employee"
)

// EmployeeDTO is the transport representation of a directory record.
type EmployeeDTO struct {
	ID             uint       `json:"id"`
	EmployeeID     string     `json:"employee_id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	Department     string     `json:"department"`
	Designation    string     `json:"designation,omitempty"`
	OfficeLocation string     `json:"office_location,omitempty"`
	EmploymentType string     `json:"employment_type,omitempty"`
	WorkMode       string     `json:"work_mode,omitempty"`
	DateOfJoining  string     `json:"date_of_joining"`
	DateOfBirth    *string    `json:"date_of_birth,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// FromEmployee maps an employee entity to its transport form.
func FromEmployee(e *employee.Employee) *EmployeeDTO {
	var dob *string
	if e.DateOfBirth() != nil {
		formatted := e.DateOfBirth().Format(employee.DateLayout)
		dob = &formatted
	}

	return &EmployeeDTO{
		ID:             e.ID(),
		EmployeeID:     e.EmployeeID(),
		FirstName:      e.FirstName(),
		LastName:       e.LastName(),
		Email:          e.Email(),
		Department:     e.Department(),
		Designation:    e.Designation(),
		OfficeLocation: e.OfficeLocation(),
		EmploymentType: string(e.EmploymentType()),
		WorkMode:       string(e.WorkMode()),
		DateOfJoining:  e.DateOfJoining().Format(employee.DateLayout),
		DateOfBirth:    dob,
		Status:         string(e.Status()),
		CreatedAt:      e.CreatedAt(),
		UpdatedAt:      e.UpdatedAt(),
	}
}

// FromEmployees maps a slice of employee entities.
func FromEmployees(employees []*employee.Employee) []*EmployeeDTO {
	out := make([]*EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		out = append(out, FromEmployee(e))
	}
	return out
}
