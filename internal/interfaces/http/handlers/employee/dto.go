package employee

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"academy/internal/application/employee/usecases"
	"academy/internal/shared/constants"
)

type CreateEmployeeRequest struct {
	EmployeeID     string `json:"employee_id" binding:"max=50"`
	FirstName      string `json:"first_name" binding:"required,max=100"`
	LastName       string `json:"last_name" binding:"required,max=100"`
	Email          string `json:"email" binding:"required,email,max=255"`
	Department     string `json:"department" binding:"required,max=100"`
	Designation    string `json:"designation" binding:"max=100"`
	OfficeLocation string `json:"office_location" binding:"max=100"`
	EmploymentType string `json:"employment_type" binding:"max=20"`
	WorkMode       string `json:"work_mode" binding:"max=20"`
	DateOfJoining  string `json:"date_of_joining" binding:"required"`
	DateOfBirth    string `json:"date_of_birth"`
}

func (r *CreateEmployeeRequest) ToCommand() usecases.CreateEmployeeCommand {
	return usecases.CreateEmployeeCommand{
		EmployeeID:     r.EmployeeID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Department:     r.Department,
		Designation:    r.Designation,
		OfficeLocation: r.OfficeLocation,
		EmploymentType: r.EmploymentType,
		WorkMode:       r.WorkMode,
		DateOfJoining:  r.DateOfJoining,
		DateOfBirth:    r.DateOfBirth,
	}
}

type ListEmployeesRequest struct {
	Page     int
	PageSize int
}

func (r *ListEmployeesRequest) ToQuery() usecases.ListEmployeesQuery {
	return usecases.ListEmployeesQuery{
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

func parseListEmployeesRequest(c *gin.Context) *ListEmployeesRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = constants.DefaultPage
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	return &ListEmployeesRequest{
		Page:     page,
		PageSize: pageSize,
	}
}
