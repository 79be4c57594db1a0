package usecases

import (
	"context"
	"fmt"

	"academy/internal/application/assignment/dto"
	"academy/internal/domain/assignment"
	"academy/internal/shared/errors"
	"academy/internal/shared/logger"
)

type DeactivateRuleUseCase struct {
	ruleRepo assignment.RuleRepository
	logger   logger.Interface
}

func NewDeactivateRuleUseCase(ruleRepo assignment.RuleRepository, logger logger.Interface) *DeactivateRuleUseCase {
	return &DeactivateRuleUseCase{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

func (uc *DeactivateRuleUseCase) Execute(ctx context.Context, ruleID uint) (*dto.RuleDTO, error) {
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

	rule.Deactivate()
	if err := uc.ruleRepo.Update(ctx, rule); err != nil {
		uc.logger.Errorw("failed to deactivate rule", "rule_id", ruleID, "error", err)
		return nil, err
	}

	uc.logger.Infow("assignment rule deactivated", "rule_id", ruleID)
	return dto.FromRule(rule), nil
}
