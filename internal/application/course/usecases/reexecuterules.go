package usecases

import (
	"context"
	"fmt"

	assignmentusecases "academy/internal/application/assignment/usecases"
	"academy/internal/domain/assignment"
	"academy/internal/domain/course"
	"academy/internal/shared/errors"
	"academy/internal/shared/logger"
)

// ReexecuteCourseRulesUseCase reruns the immediate-frequency rules targeting
// a course on demand, through the same path the publish hook uses. The
// course must be published; enrolling people into unpublished content is
// rejected.
type ReexecuteCourseRulesUseCase struct {
	courseRepo     course.Repository
	immediateRules *assignmentusecases.ExecuteImmediateRulesUseCase
	logger         logger.Interface
}

func NewReexecuteCourseRulesUseCase(
	courseRepo course.Repository,
	immediateRules *assignmentusecases.ExecuteImmediateRulesUseCase,
	logger logger.Interface,
) *ReexecuteCourseRulesUseCase {
	return &ReexecuteCourseRulesUseCase{
		courseRepo:     courseRepo,
		immediateRules: immediateRules,
		logger:         logger,
	}
}

func (uc *ReexecuteCourseRulesUseCase) Execute(ctx context.Context, courseID uint) (*assignment.BatchResult, error) {
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
	if !c.IsPublished() {
		return nil, errors.NewConflictError("course must be published before its rules can be re-executed")
	}

	batch, err := uc.immediateRules.Execute(ctx, courseID)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("course rules re-executed",
		"course_id", courseID,
		"total", batch.Total,
		"succeeded", batch.SuccessCount,
		"failed", batch.FailureCount,
	)
	return batch, nil
}
