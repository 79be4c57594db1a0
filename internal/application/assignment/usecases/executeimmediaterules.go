package usecases

import (
	"context"
	"time"

	"academy/internal/domain/assignment"
	vo "academy/internal/domain/assignment/valueobjects"
	"academy/internal/shared/biztime"
	"academy/internal/shared/logger"
)

// ExecuteImmediateRulesUseCase runs the IMMEDIATE rules targeting one
// course. The course publish flow invokes it synchronously so freshly
// published mandatory training reaches matching employees right away.
type ExecuteImmediateRulesUseCase struct {
	ruleRepo assignment.RuleRepository
	executor *ExecuteRuleUseCase
	logger   logger.Interface
}

func NewExecuteImmediateRulesUseCase(
	ruleRepo assignment.RuleRepository,
	executor *ExecuteRuleUseCase,
	logger logger.Interface,
) *ExecuteImmediateRulesUseCase {
	return &ExecuteImmediateRulesUseCase{
		ruleRepo: ruleRepo,
		executor: executor,
		logger:   logger,
	}
}

func (uc *ExecuteImmediateRulesUseCase) Execute(ctx context.Context, courseID uint) (*assignment.BatchResult, error) {
	started := biztime.NowUTC()

	rules, err := uc.ruleRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	batch := &assignment.BatchResult{
		Frequency: vo.FrequencyImmediate.String(),
		StartedAt: started,
	}

	for _, rule := range rules {
		if rule.Frequency() != vo.FrequencyImmediate || !rule.IsExecutable() {
			continue
		}
		batch.Total++
		result := uc.executor.ExecuteLoaded(ctx, rule)
		if result.Success {
			batch.SuccessCount++
		} else {
			batch.FailureCount++
		}
		batch.Results = append(batch.Results, *result)
	}

	batch.Elapsed = time.Since(started)
	if batch.Total > 0 {
		uc.logger.Infow("immediate rules executed for course",
			"course_id", courseID,
			"total", batch.Total,
			"succeeded", batch.SuccessCount,
		)
	}
	return batch, nil
}
