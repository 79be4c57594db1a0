package usecases

import (
	"context"
	"fmt"

	"academy/internal/application/course/dto"
	"academy/internal/domain/course"
	"academy/internal/shared/errors"
	"academy/internal/shared/logger"
)

type GetCourseUseCase struct {
	courseRepo course.Repository
	logger     logger.Interface
}

func NewGetCourseUseCase(courseRepo course.Repository, logger logger.Interface) *GetCourseUseCase {
	return &GetCourseUseCase{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

func (uc *GetCourseUseCase) Execute(ctx context.Context, courseID uint) (*dto.CourseDTO, error) {
	if courseID == 0 {
		return nil, errors.NewValidationError("course ID is required")
	}

	c, err := uc.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("course with ID %d not found", courseID))
	}

	return dto.FromCourse(c), nil
}
