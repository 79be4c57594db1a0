package usecases

import (
	"context"

	"academy/internal/application/employee/dto"
	"academy/internal/domain/employee"
	"academy/internal/shared/constants"
	"academy/internal/shared/logger"
)

type ListEmployeesQuery struct {
	Page     int
	PageSize int
}

type ListEmployeesResult struct {
	Employees []*dto.EmployeeDTO
	Total     int64
	Page      int
	PageSize  int
}

type ListEmployeesUseCase struct {
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewListEmployeesUseCase(employeeRepo employee.Repository, logger logger.Interface) *ListEmployeesUseCase {
	return &ListEmployeesUseCase{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (uc *ListEmployeesUseCase) Execute(ctx context.Context, query ListEmployeesQuery) (*ListEmployeesResult, error) {
	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 || query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.DefaultPageSize
	}

	employees, total, err := uc.employeeRepo.List(ctx, query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}

	return &ListEmployeesResult{
		Employees: dto.FromEmployees(employees),
		Total:     total,
		Page:      query.Page,
		PageSize:  query.PageSize,
	}, nil
}
