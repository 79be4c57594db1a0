package usecases

import (
	"context"
	"fmt"

	"academy/internal/application/assignment/dto"
	"academy/internal/domain/assignment"
	"academy/internal/shared/errors"
	"academy/internal/shared/logger"
)

type GetRuleUseCase struct {
	ruleRepo assignment.RuleRepository
	logger   logger.Interface
}

func NewGetRuleUseCase(ruleRepo assignment.RuleRepository, logger logger.Interface) *GetRuleUseCase {
	return &GetRuleUseCase{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

func (uc *GetRuleUseCase) Execute(ctx context.Context, ruleID uint) (*dto.RuleDTO, error) {
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

	return dto.FromRule(rule), nil
}
