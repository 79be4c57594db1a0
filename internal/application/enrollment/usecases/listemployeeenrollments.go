package usecases

import (
	"context"
	"fmt"

	"academy/internal/application/enrollment/dto"
	"academy/internal/domain/employee"
	"academy/internal/domain/enrollment"
	"academy/internal/shared/errors"
	"academy/internal/shared/logger"
)

type ListEmployeeEnrollmentsUseCase struct {
	enrollmentRepo enrollment.Repository
	employeeRepo   employee.Repository
	logger         logger.Interface
}

func NewListEmployeeEnrollmentsUseCase(
	enrollmentRepo enrollment.Repository,
	employeeRepo employee.Repository,
	logger logger.Interface,
) *ListEmployeeEnrollmentsUseCase {
	return &ListEmployeeEnrollmentsUseCase{
		enrollmentRepo: enrollmentRepo,
		employeeRepo:   employeeRepo,
		logger:         logger,
	}
}

func (uc *ListEmployeeEnrollmentsUseCase) Execute(ctx context.Context, employeeID uint) ([]*dto.EnrollmentDTO, error) {
	if employeeID == 0 {
		return nil, errors.NewValidationError("employee ID is required")
	}

	emp, err := uc.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("employee with ID %d not found", employeeID))
	}

	enrollments, err := uc.enrollmentRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return dto.FromEnrollments(enrollments), nil
}
