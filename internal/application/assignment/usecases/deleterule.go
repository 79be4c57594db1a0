package usecases

import (
	"context"
	"fmt"

	"academy/internal/domain/assignment"
	"academy/internal/shared/errors"
	"academy/internal/shared/logger"
)

type DeleteRuleUseCase struct {
	ruleRepo assignment.RuleRepository
	logger   logger.Interface
}

func NewDeleteRuleUseCase(ruleRepo assignment.RuleRepository, logger logger.Interface) *DeleteRuleUseCase {
	return &DeleteRuleUseCase{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

// Execute removes the rule and its criteria. Enrollments the rule produced
// are historical records and stay untouched.
func (uc *DeleteRuleUseCase) Execute(ctx context.Context, ruleID uint) error {
	if ruleID == 0 {
		return errors.NewValidationError("rule ID is required")
	}

	rule, err := uc.ruleRepo.GetByID(ctx, ruleID)
	if err != nil {
		return err
	}
	if rule == nil {
		return errors.NewNotFoundError(fmt.Sprintf("rule with ID %d not found", ruleID))
	}

	if err := uc.ruleRepo.Delete(ctx, ruleID); err != nil {
		uc.logger.Errorw("failed to delete rule", "rule_id", ruleID, "error", err)
		return err
	}

	uc.logger.Infow("assignment rule deleted", "rule_id", ruleID, "name", rule.Name())
	return nil
}
