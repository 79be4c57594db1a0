package usecases

import (
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"academy/internal/application/assignment/dto"
	"academy/internal/domain/assignment"
	vo "academy/internal/domain/assignment/valueobjects"
	"academy/internal/domain/course"
	"academy/internal/domain/enrollment"
	"academy/internal/shared/errors"
	"academy/internal/shared/logger"
)

type UpdateRuleCommand struct {
	RuleID         uint
	Name           string
	Description    string
	CourseID       uint
	EnrollmentType string
	DueDays        *int
	Frequency      string
	MatchLogic     string
	// Criteria fully replaces the existing collection.
	Criteria []CriterionInput
}

type UpdateRuleUseCase struct {
	ruleRepo   assignment.RuleRepository
	courseRepo course.Repository
	sanitizer  *bluemonday.Policy
	logger     logger.Interface
}

func NewUpdateRuleUseCase(
	ruleRepo assignment.RuleRepository,
	courseRepo course.Repository,
	logger logger.Interface,
) *UpdateRuleUseCase {
	return &UpdateRuleUseCase{
		ruleRepo:   ruleRepo,
		courseRepo: courseRepo,
		sanitizer:  bluemonday.StrictPolicy(),
		logger:     logger,
	}
}

func (uc *UpdateRuleUseCase) Execute(ctx context.Context, cmd UpdateRuleCommand) (*dto.RuleDTO, error) {
	if cmd.RuleID == 0 {
		return nil, errors.NewValidationError("rule ID is required")
	}

	rule, err := uc.ruleRepo.GetByID(ctx, cmd.RuleID)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("rule with ID %d not found", cmd.RuleID))
	}

	criteria, err := buildCriteria(cmd.Criteria)
	if err != nil {
		return nil, err
	}

	enrollmentType, err := enrollment.ParseType(cmd.EnrollmentType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	frequency, err := vo.ParseFrequency(cmd.Frequency)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.CourseID != rule.CourseID() {
		target, err := uc.courseRepo.GetByID(ctx, cmd.CourseID)
		if err != nil {
			return nil, err
		}
		if target == nil {
			return nil, errors.NewNotFoundError(fmt.Sprintf("course with ID %d not found", cmd.CourseID))
		}
	}

	if err := rule.UpdateDetails(
		cmd.Name,
		uc.sanitizer.Sanitize(cmd.Description),
		cmd.CourseID,
		enrollmentType,
		cmd.DueDays,
		frequency,
		vo.NormalizeMatchLogic(cmd.MatchLogic),
	); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := rule.ReplaceCriteria(criteria); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ruleRepo.Update(ctx, rule); err != nil {
		uc.logger.Errorw("failed to update rule", "rule_id", cmd.RuleID, "error", err)
		return nil, err
	}

	uc.logger.Infow("assignment rule updated", "rule_id", rule.ID())
	return dto.FromRule(rule), nil
}
