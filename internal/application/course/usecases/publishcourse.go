package usecases

import (
	"context"
	"fmt"

	assignmentusecases "academy/internal/application/assignment/usecases"
	"academy/internal/application/course/dto"
	"academy/internal/domain/assignment"
	"academy/internal/domain/course"
	"academy/internal/shared/errors"
	"academy/internal/shared/logger"
)

type PublishCourseResult struct {
	Course         *dto.CourseDTO          `json:"course"`
	ImmediateRules *assignment.BatchResult `json:"immediate_rules,omitempty"`
}

// PublishCourseUseCase publishes a course and synchronously runs the
// IMMEDIATE rules targeting it, so mandatory training reaches matching
// employees before the publish call returns.
type PublishCourseUseCase struct {
	courseRepo     course.Repository
	immediateRules *assignmentusecases.ExecuteImmediateRulesUseCase
	logger         logger.Interface
}

func NewPublishCourseUseCase(
	courseRepo course.Repository,
	immediateRules *assignmentusecases.ExecuteImmediateRulesUseCase,
	logger logger.Interface,
) *PublishCourseUseCase {
	return &PublishCourseUseCase{
		courseRepo:     courseRepo,
		immediateRules: immediateRules,
		logger:         logger,
	}
}

func (uc *PublishCourseUseCase) Execute(ctx context.Context, courseID uint) (*PublishCourseResult, error) {
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

	if err := c.Publish(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}
	if err := uc.courseRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to publish course", "course_id", courseID, "error", err)
		return nil, err
	}
	uc.logger.Infow("course published", "course_id", courseID, "title", c.Title())

	// The rules already had their chance to fail individually; a batch-level
	// error here must not roll back the publish.
	batch, err := uc.immediateRules.Execute(ctx, courseID)
	if err != nil {
		uc.logger.Errorw("immediate rules failed after publish", "course_id", courseID, "error", err)
		batch = nil
	}

	return &PublishCourseResult{
		Course:         dto.FromCourse(c),
		ImmediateRules: batch,
	}, nil
}
