package usecases

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"academy/internal/domain/assignment"
	vo "academy/internal/domain/assignment/valueobjects"
	"academy/internal/shared/biztime"
	"academy/internal/shared/logger"
)

// ExecuteScheduledRulesUseCase runs every executable rule of one frequency.
// Rules run sequentially, oldest first. A failing rule is recorded in the
// batch counters and does not stop the remaining rules.
type ExecuteScheduledRulesUseCase struct {
	ruleRepo assignment.RuleRepository
	executor *ExecuteRuleUseCase
	logger   logger.Interface
}

func NewExecuteScheduledRulesUseCase(
	ruleRepo assignment.RuleRepository,
	executor *ExecuteRuleUseCase,
	logger logger.Interface,
) *ExecuteScheduledRulesUseCase {
	return &ExecuteScheduledRulesUseCase{
		ruleRepo: ruleRepo,
		executor: executor,
		logger:   logger,
	}
}

func (uc *ExecuteScheduledRulesUseCase) Execute(ctx context.Context, frequency vo.ExecutionFrequency) (*assignment.BatchResult, error) {
	started := biztime.NowUTC()

	rules, err := uc.ruleRepo.ListExecutable(ctx, frequency)
	if err != nil {
		uc.logger.Errorw("failed to list executable rules", "frequency", frequency.String(), "error", err)
		return nil, err
	}

	batch := &assignment.BatchResult{
		Frequency: frequency.String(),
		Total:     len(rules),
		Results:   make([]assignment.ExecutionResult, 0, len(rules)),
		StartedAt: started,
	}

	uc.logger.Infow("starting scheduled rule batch", "frequency", frequency.String(), "rules", len(rules))

	for _, rule := range rules {
		result := uc.runRule(ctx, rule)
		if result.Success {
			batch.SuccessCount++
		} else {
			batch.FailureCount++
		}
		batch.Results = append(batch.Results, *result)
	}

	batch.Elapsed = time.Since(started)
	uc.logger.Infow("scheduled rule batch finished",
		"frequency", frequency.String(),
		"total", batch.Total,
		"succeeded", batch.SuccessCount,
		"failed", batch.FailureCount,
		"elapsed", batch.Elapsed,
	)
	return batch, nil
}

// runRule executes one rule, containing panics so a single misbehaving rule
// counts as a failure instead of killing the batch job.
func (uc *ExecuteScheduledRulesUseCase) runRule(ctx context.Context, rule *assignment.Rule) (result *assignment.ExecutionResult) {
	defer func() {
		if r := recover(); r != nil {
			uc.logger.Errorw("rule execution panicked",
				"rule_id", rule.ID(),
				"rule_name", rule.Name(),
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
			result = &assignment.ExecutionResult{
				RuleID:     rule.ID(),
				RuleName:   rule.Name(),
				Success:    false,
				Message:    fmt.Sprintf("rule execution panicked: %v", r),
				ExecutedAt: biztime.NowUTC(),
			}
		}
	}()
	return uc.executor.ExecuteLoaded(ctx, rule)
}
