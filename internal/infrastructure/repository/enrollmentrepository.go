package repository

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"academy/internal/domain/enrollment"
	"academy/internal/infrastructure/persistence/mappers"
	"academy/internal/infrastructure/persistence/models"
	"academy/internal/shared/logger"
)

// EnrollmentRepository implements enrollment.Repository
type EnrollmentRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.EnrollmentMapper
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *gorm.DB, logger logger.Interface) enrollment.Repository {
	return &EnrollmentRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewEnrollmentMapper(),
	}
}

// Create persists a new enrollment. A collision with the (employee, course)
// unique index surfaces as enrollment.ErrAlreadyEnrolled so concurrent rule
// runs stay idempotent.
func (r *EnrollmentRepository) Create(ctx context.Context, enr *enrollment.Enrollment) error {
	model := r.mapper.ToModel(enr)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateKey(err) {
			return enrollment.ErrAlreadyEnrolled
		}
		r.logger.Error("failed to create enrollment",
			"employee_id", enr.EmployeeID(), "course_id", enr.CourseID(), "error", err)
		return fmt.Errorf("failed to create enrollment: %w", err)
	}

	if enr.ID() == 0 {
		if err := enr.SetID(model.ID); err != nil {
			return err
		}
	}
	return nil
}

// Exists reports whether an (employee, course) enrollment already exists
func (r *EnrollmentRepository) Exists(ctx context.Context, employeeID, courseID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.EnrollmentModel{}).
		Where("employee_id = ? AND course_id = ?", employeeID, courseID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment existence: %w", err)
	}
	return count > 0, nil
}

// GetByID retrieves an enrollment; nil when absent
func (r *EnrollmentRepository) GetByID(ctx context.Context, id uint) (*enrollment.Enrollment, error) {
	var model models.EnrollmentModel

	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Error("failed to get enrollment", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// ListByEmployee retrieves all enrollments of one employee
func (r *EnrollmentRepository) ListByEmployee(ctx context.Context, employeeID uint) ([]*enrollment.Enrollment, error) {
	var modelList []*models.EnrollmentModel

	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("enrolled_date DESC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Error("failed to list enrollments by employee", "employee_id", employeeID, "error", err)
		return nil, fmt.Errorf("failed to list enrollments by employee: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}

// ListByCourse retrieves all enrollments into one course
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID uint) ([]*enrollment.Enrollment, error) {
	var modelList []*models.EnrollmentModel

	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("enrolled_date DESC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Error("failed to list enrollments by course", "course_id", courseID, "error", err)
		return nil, fmt.Errorf("failed to list enrollments by course: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}

// isDuplicateKey recognizes unique-constraint violations across the MySQL
// and SQLite drivers. gorm.ErrDuplicatedKey requires a translator-enabled
// driver, so the string check stays as a fallback.
func isDuplicateKey(err error) bool {
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
