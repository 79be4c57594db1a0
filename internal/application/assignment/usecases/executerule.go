package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"academy/internal/domain/assignment"
	"academy/internal/domain/enrollment"
	"academy/internal/shared/biztime"
	"academy/internal/shared/errors"
	"academy/internal/shared/logger"
)

// RuleNotActiveMessage is returned when execution is requested for a rule
// that is not in a runnable state. The request itself still succeeds.
const RuleNotActiveMessage = "Rule is not active"

type ExecuteRuleCommand struct {
	RuleID uint
}

type ExecuteRuleUseCase struct {
	ruleRepo       assignment.RuleRepository
	enrollmentRepo enrollment.Repository
	matcher        *Matcher
	locker         ExecutionLocker
	logger         logger.Interface
}

func NewExecuteRuleUseCase(
	ruleRepo assignment.RuleRepository,
	enrollmentRepo enrollment.Repository,
	matcher *Matcher,
	locker ExecutionLocker,
	logger logger.Interface,
) *ExecuteRuleUseCase {
	return &ExecuteRuleUseCase{
		ruleRepo:       ruleRepo,
		enrollmentRepo: enrollmentRepo,
		matcher:        matcher,
		locker:         locker,
		logger:         logger,
	}
}

func (uc *ExecuteRuleUseCase) Execute(ctx context.Context, cmd ExecuteRuleCommand) (*assignment.ExecutionResult, error) {
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

	result := uc.ExecuteLoaded(ctx, rule)
	return result, nil
}

// ExecuteLoaded runs an already-loaded rule. Shared by the single-rule
// endpoint, the scheduled batch, and the publish hook.
//
// A rule that is not executable is a no-op with Success=false and no side
// effects. Per-candidate enrollment failures are collected and do not abort
// the run: the result reports Success=true with a populated Errors slice.
func (uc *ExecuteRuleUseCase) ExecuteLoaded(ctx context.Context, rule *assignment.Rule) *assignment.ExecutionResult {
	started := biztime.NowUTC()
	result := &assignment.ExecutionResult{
		RuleID:     rule.ID(),
		RuleName:   rule.Name(),
		ExecutedAt: started,
	}

	if !rule.IsExecutable() {
		uc.logger.Infow("skipping rule that is not active", "rule_id", rule.ID(), "status", rule.Status().String())
		result.Success = false
		result.Message = RuleNotActiveMessage
		result.Elapsed = time.Since(started)
		return result
	}

	if uc.locker != nil {
		release, acquired, err := uc.locker.TryLock(ctx, rule.ID())
		if err != nil {
			uc.logger.Warnw("rule lock unavailable, continuing without it", "rule_id", rule.ID(), "error", err)
		} else if !acquired {
			result.Success = false
			result.Message = "Rule execution already in progress"
			result.Elapsed = time.Since(started)
			return result
		} else {
			defer release()
		}
	}

	uc.logger.Infow("executing assignment rule", "rule_id", rule.ID(), "rule_name", rule.Name())

	matched, err := uc.matcher.Match(ctx, rule)
	if err != nil {
		uc.logger.Errorw("failed to load directory snapshot", "rule_id", rule.ID(), "error", err)
		result.Success = false
		result.Message = "Failed to load employee directory"
		result.Errors = append(result.Errors, err.Error())
		result.Elapsed = time.Since(started)
		return result
	}
	result.TotalMatched = len(matched)

	enrolledDate := biztime.Today()
	dueDate := biztime.DueDate(rule.DueDays())
	assignedBy := fmt.Sprintf("rule:%d", rule.ID())

	for _, emp := range matched {
		exists, err := uc.enrollmentRepo.Exists(ctx, emp.ID(), rule.CourseID())
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("employee %s: %v", emp.EmployeeID(), err))
			continue
		}
		if exists {
			result.Skipped++
			continue
		}

		enr, err := enrollment.NewFromRule(emp.ID(), rule.CourseID(), rule.EnrollmentType(), enrolledDate, dueDate, assignedBy)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("employee %s: %v", emp.EmployeeID(), err))
			continue
		}

		if err := uc.enrollmentRepo.Create(ctx, enr); err != nil {
			if stderrors.Is(err, enrollment.ErrAlreadyEnrolled) {
				result.Skipped++
				continue
			}
			uc.logger.Warnw("failed to enroll employee",
				"rule_id", rule.ID(),
				"employee_id", emp.ID(),
				"course_id", rule.CourseID(),
				"error", err,
			)
			result.Errors = append(result.Errors, fmt.Sprintf("employee %s: %v", emp.EmployeeID(), err))
			continue
		}
		result.Created++
	}

	rule.RecordExecution(started, result.TotalMatched)
	if err := uc.ruleRepo.UpdateExecutionInfo(ctx, rule); err != nil {
		uc.logger.Warnw("failed to persist execution bookkeeping", "rule_id", rule.ID(), "error", err)
	}

	result.Success = true
	result.Elapsed = time.Since(started)

	uc.logger.Infow("rule execution finished",
		"rule_id", rule.ID(),
		"matched", result.TotalMatched,
		"created", result.Created,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
	)
	return result
}
