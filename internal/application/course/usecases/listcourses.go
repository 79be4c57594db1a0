package usecases

import (
	"context"

	"academy/internal/application/course/dto"
	"academy/internal/domain/course"
	"academy/internal/shared/constants"
	"academy/internal/shared/logger"
)

type ListCoursesQuery struct {
	Page     int
	PageSize int
}

type ListCoursesResult struct {
	Courses  []*dto.CourseDTO
	Total    int64
	Page     int
	PageSize int
}

type ListCoursesUseCase struct {
	courseRepo course.Repository
	logger     logger.Interface
}

func NewListCoursesUseCase(courseRepo course.Repository, logger logger.Interface) *ListCoursesUseCase {
	return &ListCoursesUseCase{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

func (uc *ListCoursesUseCase) Execute(ctx context.Context, query ListCoursesQuery) (*ListCoursesResult, error) {
	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 || query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.DefaultPageSize
	}

	courses, total, err := uc.courseRepo.List(ctx, query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}

	return &ListCoursesResult{
		Courses:  dto.FromCourses(courses),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
