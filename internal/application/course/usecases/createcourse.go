package usecases

import (
	"context"

	"github.com/microcosm-cc/bluemonday"

	"academy/internal/application/course/dto"
	"academy/internal/domain/course"
	"academy/internal/shared/errors"
	"academy/internal/shared/logger"
)

type CreateCourseCommand struct {
	Title         string
	Description   string
	Category      string
	DurationHours *int
	CreatedBy     string
}

type CreateCourseUseCase struct {
	courseRepo course.Repository
	sanitizer  *bluemonday.Policy
	logger     logger.Interface
}

func NewCreateCourseUseCase(courseRepo course.Repository, logger logger.Interface) *CreateCourseUseCase {
	return &CreateCourseUseCase{
		courseRepo: courseRepo,
		sanitizer:  bluemonday.UGCPolicy(),
		logger:     logger,
	}
}

func (uc *CreateCourseUseCase) Execute(ctx context.Context, cmd CreateCourseCommand) (*dto.CourseDTO, error) {
	c, err := course.NewCourse(
		cmd.Title,
		uc.sanitizer.Sanitize(cmd.Description),
		cmd.Category,
		cmd.DurationHours,
		cmd.CreatedBy,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.courseRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to persist course", "title", cmd.Title, "error", err)
		return nil, err
	}

	uc.logger.Infow("course created", "course_id", c.ID(), "title", c.Title())
	return dto.FromCourse(c), nil
}
