package usecases

import (
	"context"
	"fmt"

	"academy/internal/domain/assignment"
	vo "academy/internal/domain/assignment/valueobjects"
	"academy/internal/domain/enrollment"
	"academy/internal/shared/errors"
	"academy/internal/shared/logger"
)

// PreviewRuleUseCase runs a rule's matcher without writing anything: it
// reports who would be enrolled, flagging employees already enrolled in the
// target course. Inactive rules can be previewed; only execution is gated
// on status.
type PreviewRuleUseCase struct {
	ruleRepo       assignment.RuleRepository
	enrollmentRepo enrollment.Repository
	matcher        *Matcher
	logger         logger.Interface
}

func NewPreviewRuleUseCase(
	ruleRepo assignment.RuleRepository,
	enrollmentRepo enrollment.Repository,
	matcher *Matcher,
	logger logger.Interface,
) *PreviewRuleUseCase {
	return &PreviewRuleUseCase{
		ruleRepo:       ruleRepo,
		enrollmentRepo: enrollmentRepo,
		matcher:        matcher,
		logger:         logger,
	}
}

func (uc *PreviewRuleUseCase) Execute(ctx context.Context, ruleID uint) (*assignment.PreviewResult, error) {
	if ruleID == 0 {
		return nil, errors.NewValidationError("rule ID is required")
	}

	rule, err := uc.ruleRepo.GetByID(ctx, ruleID)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("rule with ID %d not found", ruleID))
	}

	return uc.preview(ctx, rule)
}

// PreviewDraftCommand carries an unsaved rule definition for a dry run.
type PreviewDraftCommand struct {
	Name           string
	Description    string
	CourseID       uint
	EnrollmentType string
	DueDays        *int
	Frequency      string
	MatchLogic     string
	Criteria       []CriterionInput
}

// ExecuteDraft previews a rule that has not been saved yet. The draft never
// touches the rule store; only the enrollment existence checks read state.
func (uc *PreviewRuleUseCase) ExecuteDraft(ctx context.Context, cmd PreviewDraftCommand) (*assignment.PreviewResult, error) {
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
	if cmd.CourseID == 0 {
		return nil, errors.NewValidationError("course ID is required")
	}

	rule, err := assignment.NewRule(
		cmd.Name,
		cmd.Description,
		cmd.CourseID,
		enrollmentType,
		cmd.DueDays,
		frequency,
		vo.NormalizeMatchLogic(cmd.MatchLogic),
		criteria,
		"",
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	return uc.preview(ctx, rule)
}

func (uc *PreviewRuleUseCase) preview(ctx context.Context, rule *assignment.Rule) (*assignment.PreviewResult, error) {
	matched, err := uc.matcher.Match(ctx, rule)
	if err != nil {
		return nil, err
	}

	result := &assignment.PreviewResult{
		RuleID:       rule.ID(),
		RuleName:     rule.Name(),
		TotalMatched: len(matched),
		Candidates:   make([]assignment.PreviewCandidate, 0, len(matched)),
	}

	for _, emp := range matched {
		already, err := uc.enrollmentRepo.Exists(ctx, emp.ID(), rule.CourseID())
		if err != nil {
			return nil, err
		}
		if already {
			result.AlreadyEnrolled++
		} else {
			result.WillBeEnrolled++
		}
		result.Candidates = append(result.Candidates, assignment.PreviewCandidate{
			EmployeeID:      emp.ID(),
			EmployeeCode:    emp.EmployeeID(),
			FullName:        emp.FullName(),
			Email:           emp.Email(),
			Department:      emp.Department(),
			Designation:     emp.Designation(),
			AlreadyEnrolled: already,
		})
	}

	uc.logger.Debugw("rule preview computed", "rule_id", rule.ID(), "rule_name", rule.Name(), "matched", result.TotalMatched)
	return result, nil
}
