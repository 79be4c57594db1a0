package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"academy/internal/domain/course"
	"academy/internal/infrastructure/persistence/mappers"
	"academy/internal/infrastructure/persistence/models"
	"academy/internal/shared/logger"
)

// CourseRepository implements course.Repository
type CourseRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.CourseMapper
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *gorm.DB, logger logger.Interface) course.Repository {
	return &CourseRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewCourseMapper(),
	}
}

// Create persists a new course
func (r *CourseRepository) Create(ctx context.Context, c *course.Course) error {
	model := r.mapper.ToModel(c)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Error("failed to create course", "title", c.Title(), "error", err)
		return fmt.Errorf("failed to create course: %w", err)
	}

	if c.ID() == 0 {
		if err := c.SetID(model.ID); err != nil {
			return err
		}
	}
	return nil
}

// GetByID retrieves a course; nil when absent
func (r *CourseRepository) GetByID(ctx context.Context, id uint) (*course.Course, error) {
	var model models.CourseModel

	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Error("failed to get course", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// List retrieves courses page by page, newest first
func (r *CourseRepository) List(ctx context.Context, page, pageSize int) ([]*course.Course, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.CourseModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count courses: %w", err)
	}

	var modelList []*models.CourseModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Error("failed to list courses", "error", err)
		return nil, 0, fmt.Errorf("failed to list courses: %w", err)
	}

	courses, err := r.mapper.ToDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

// Update persists changes to a course
func (r *CourseRepository) Update(ctx context.Context, c *course.Course) error {
	model := r.mapper.ToModel(c)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		r.logger.Error("failed to update course", "id", c.ID(), "error", err)
		return fmt.Errorf("failed to update course: %w", err)
	}
	return nil
}

// Delete removes a course
func (r *CourseRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.CourseModel{}, id).Error; err != nil {
		r.logger.Error("failed to delete course", "id", id, "error", err)
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return nil
}
