package usecases

import (
	"context"
	"time"

	assignmentusecases "academy/internal/application/assignment/usecases"
	"academy/internal/application/employee/dto"
	vo "academy/internal/domain/assignment/valueobjects"
	"academy/internal/domain/employee"
	"academy/internal/shared/errors"
	"academy/internal/shared/goroutine"
	"academy/internal/shared/logger"
)

type CreateEmployeeCommand struct {
	EmployeeID     string
	FirstName      string
	LastName       string
	Email          string
	Department     string
	Designation    string
	OfficeLocation string
	EmploymentType string
	WorkMode       string
	DateOfJoining  string
	DateOfBirth    string
}

// CreateEmployeeUseCase adds a directory record and, when the new-joiner
// trigger is enabled, kicks off the ON_NEW_EMPLOYEE rules in the background
// so day-one training lands without waiting for the nightly batch.
type CreateEmployeeUseCase struct {
	employeeRepo   employee.Repository
	onNewEmployee  *assignmentusecases.ExecuteScheduledRulesUseCase
	triggerEnabled bool
	logger         logger.Interface
}

func NewCreateEmployeeUseCase(
	employeeRepo employee.Repository,
	onNewEmployee *assignmentusecases.ExecuteScheduledRulesUseCase,
	triggerEnabled bool,
	logger logger.Interface,
) *CreateEmployeeUseCase {
	return &CreateEmployeeUseCase{
		employeeRepo:   employeeRepo,
		onNewEmployee:  onNewEmployee,
		triggerEnabled: triggerEnabled,
		logger:         logger,
	}
}

func (uc *CreateEmployeeUseCase) Execute(ctx context.Context, cmd CreateEmployeeCommand) (*dto.EmployeeDTO, error) {
	dateOfJoining, err := time.Parse(employee.DateLayout, cmd.DateOfJoining)
	if err != nil {
		return nil, errors.NewValidationError("date of joining must be in YYYY-MM-DD format")
	}

	emp, err := employee.NewEmployee(cmd.EmployeeID, cmd.FirstName, cmd.LastName, cmd.Email, cmd.Department, cmd.Designation, dateOfJoining)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	emp.SetProfile(cmd.Department, cmd.Designation, cmd.OfficeLocation, employee.EmploymentType(cmd.EmploymentType), employee.WorkMode(cmd.WorkMode))

	if cmd.DateOfBirth != "" {
		dob, err := time.Parse(employee.DateLayout, cmd.DateOfBirth)
		if err != nil {
			return nil, errors.NewValidationError("date of birth must be in YYYY-MM-DD format")
		}
		emp.SetDateOfBirth(&dob)
	}

	if err := uc.employeeRepo.Create(ctx, emp); err != nil {
		uc.logger.Errorw("failed to persist employee", "email", cmd.Email, "error", err)
		return nil, err
	}
	uc.logger.Infow("employee created", "id", emp.ID(), "employee_id", emp.EmployeeID())

	if uc.triggerEnabled && uc.onNewEmployee != nil {
		// Trigger failures are logged, never surfaced: the record exists and
		// the nightly batch will still pick the employee up.
		empID := emp.EmployeeID()
		goroutine.SafeGo(uc.logger, "on-new-employee-rules", func() {
			runCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			if _, err := uc.onNewEmployee.Execute(runCtx, vo.FrequencyOnNewEmployee); err != nil {
				uc.logger.Errorw("new-joiner rules failed", "employee_id", empID, "error", err)
			}
		})
	}

	return dto.FromEmployee(emp), nil
}
