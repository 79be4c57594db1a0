package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"academy/internal/domain/employee"
	"academy/internal/infrastructure/persistence/mappers"
	"academy/internal/infrastructure/persistence/models"
	"academy/internal/shared/logger"
)

// EmployeeRepository implements employee.Repository and, through ListActive,
// the employee.Directory port the matcher reads from.
type EmployeeRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.EmployeeMapper
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *gorm.DB, logger logger.Interface) *EmployeeRepository {
	return &EmployeeRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewEmployeeMapper(),
	}
}

// Create persists a new employee record
func (r *EmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	model := r.mapper.ToModel(emp)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Error("failed to create employee", "employee_id", emp.EmployeeID(), "error", err)
		return fmt.Errorf("failed to create employee: %w", err)
	}

	if emp.ID() == 0 {
		if err := emp.SetID(model.ID); err != nil {
			return err
		}
	}
	return nil
}

// GetByID retrieves an employee by database identity; nil when absent
func (r *EmployeeRepository) GetByID(ctx context.Context, id uint) (*employee.Employee, error) {
	var model models.EmployeeModel

	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Error("failed to get employee", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// GetByEmployeeID retrieves an employee by business identifier; nil when absent
func (r *EmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	var model models.EmployeeModel

	err := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Error("failed to get employee by employee_id", "employee_id", employeeID, "error", err)
		return nil, fmt.Errorf("failed to get employee by employee_id: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// List retrieves employees page by page
func (r *EmployeeRepository) List(ctx context.Context, page, pageSize int) ([]*employee.Employee, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.EmployeeModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	var modelList []*models.EmployeeModel
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Error("failed to list employees", "error", err)
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	employees, err := r.mapper.ToDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

// Update persists changes to an employee record
func (r *EmployeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	model := r.mapper.ToModel(emp)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		r.logger.Error("failed to update employee", "id", emp.ID(), "error", err)
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

// Delete removes an employee record
func (r *EmployeeRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.EmployeeModel{}, id).Error; err != nil {
		r.logger.Error("failed to delete employee", "id", id, "error", err)
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// ListActive retrieves the full active directory snapshot the matcher
// evaluates against
func (r *EmployeeRepository) ListActive(ctx context.Context) ([]*employee.Employee, error) {
	var modelList []*models.EmployeeModel

	err := r.db.WithContext(ctx).
		Where("status = ?", string(employee.StatusActive)).
		Order("id ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Error("failed to list active employees", "error", err)
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}
