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

// CriterionInput is one criterion as submitted by a client.
type CriterionInput struct {
	FieldName  string
	Operator   string
	FieldValue string
}

type CreateRuleCommand struct {
	Name           string
	Description    string
	CourseID       uint
	EnrollmentType string
	DueDays        *int
	Frequency      string
	MatchLogic     string
	Criteria       []CriterionInput
	CreatedBy      string
}

type CreateRuleUseCase struct {
	ruleRepo   assignment.RuleRepository
	courseRepo course.Repository
	sanitizer  *bluemonday.Policy
	logger     logger.Interface
}

func NewCreateRuleUseCase(
	ruleRepo assignment.RuleRepository,
	courseRepo course.Repository,
	logger logger.Interface,
) *CreateRuleUseCase {
	return &CreateRuleUseCase{
		ruleRepo:   ruleRepo,
		courseRepo: courseRepo,
		sanitizer:  bluemonday.StrictPolicy(),
		logger:     logger,
	}
}

func (uc *CreateRuleUseCase) Execute(ctx context.Context, cmd CreateRuleCommand) (*dto.RuleDTO, error) {
	uc.logger.Infow("creating assignment rule", "name", cmd.Name, "course_id", cmd.CourseID)

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

	target, err := uc.courseRepo.GetByID(ctx, cmd.CourseID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("course with ID %d not found", cmd.CourseID))
	}

	rule, err := assignment.NewRule(
		cmd.Name,
		uc.sanitizer.Sanitize(cmd.Description),
		cmd.CourseID,
		enrollmentType,
		cmd.DueDays,
		frequency,
		vo.NormalizeMatchLogic(cmd.MatchLogic),
		criteria,
		cmd.CreatedBy,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ruleRepo.Create(ctx, rule); err != nil {
		uc.logger.Errorw("failed to persist rule", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("assignment rule created", "rule_id", rule.ID(), "name", rule.Name())
	return dto.FromRule(rule), nil
}

// buildCriteria validates and converts client criteria. Structural problems
// (bad operator, blank field name) are rejected here; value-level problems
// (unknown field, bad date) surface at execution time as logged skips.
func buildCriteria(inputs []CriterionInput) ([]assignment.Criterion, error) {
	if len(inputs) == 0 {
		return nil, errors.NewValidationError("at least one criterion is required")
	}

	criteria := make([]assignment.Criterion, 0, len(inputs))
	for i, in := range inputs {
		op, err := vo.ParseOperator(in.Operator)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("criterion %d: %v", i+1, err))
		}
		c, err := assignment.NewCriterion(in.FieldName, op, in.FieldValue, i)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("criterion %d: %v", i+1, err))
		}
		criteria = append(criteria, c)
	}
	return criteria, nil
}
