package models

import (
	"time"

	"academy/internal/shared/constants"
)

// EmployeeModel is the persistence model for directory records.
type EmployeeModel struct {
	ID             uint   `gorm:"primarykey"`
	EmployeeID     string `gorm:"uniqueIndex;not null;size:50"`
	FirstName      string `gorm:"not null;size:100"`
	LastName       string `gorm:"not null;size:100"`
	Email          string `gorm:"uniqueIndex;not null;size:255"`
	Department     string `gorm:"not null;size:100;index:idx_employees_department"`
	Designation    string `gorm:"size:100"`
	OfficeLocation string `gorm:"size:100"`
	EmploymentType string `gorm:"size:20"`
	WorkMode       string `gorm:"size:20"`
	DateOfJoining  time.Time
	DateOfBirth    *time.Time
	Status         string `gorm:"not null;default:ACTIVE;size:20;index:idx_employees_status"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (EmployeeModel) TableName() string {
	return constants.TableEmployees
}
