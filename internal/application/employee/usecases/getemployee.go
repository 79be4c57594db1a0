package usecases

import (
	"context"
	"fmt"

	"academy/internal/application/employee/dto"
	"academy/internal/domain/employee"
	"academy/internal/shared/errors"
	"academy/internal/shared/logger"
)

type GetEmployeeUseCase struct {
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewGetEmployeeUseCase(employeeRepo employee.Repository, logger logger.Interface) *GetEmployeeUseCase {
	return &GetEmployeeUseCase{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (uc *GetEmployeeUseCase) Execute(ctx context.Context, id uint) (*dto.EmployeeDTO, error) {
	if id == 0 {
		return nil, errors.NewValidationError("employee ID is required")
	}

	emp, err := uc.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("employee with ID %d not found", id))
	}

	return dto.FromEmployee(emp), nil
}
