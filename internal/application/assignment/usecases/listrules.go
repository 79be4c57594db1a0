package usecases

import (
	"context"

	"academy/internal/application/assignment/dto"
	"academy/internal/domain/assignment"
	"academy/internal/shared/constants"
	"academy/internal/shared/logger"
)

type ListRulesQuery struct {
	Page     int
	PageSize int
	// CourseID filters to rules targeting one course; zero means all.
	CourseID uint
	// ActiveOnly restricts the listing to executable rules.
	ActiveOnly bool
}

type ListRulesResult struct {
	Rules    []*dto.RuleDTO
	Total    int64
	Page     int
	PageSize int
}

type ListRulesUseCase struct {
	ruleRepo assignment.RuleRepository
	logger   logger.Interface
}

func NewListRulesUseCase(ruleRepo assignment.RuleRepository, logger logger.Interface) *ListRulesUseCase {
	return &ListRulesUseCase{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

func (uc *ListRulesUseCase) Execute(ctx context.Context, query ListRulesQuery) (*ListRulesResult, error) {
	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 || query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.DefaultPageSize
	}

	// Filtered listings are small; they bypass pagination.
	if query.CourseID != 0 {
		rules, err := uc.ruleRepo.ListByCourse(ctx, query.CourseID)
		if err != nil {
			return nil, err
		}
		return &ListRulesResult{
			Rules:    dto.FromRules(rules),
			Total:    int64(len(rules)),
			Page:     1,
			PageSize: len(rules),
		}, nil
	}
	if query.ActiveOnly {
		rules, err := uc.ruleRepo.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		return &ListRulesResult{
			Rules:    dto.FromRules(rules),
			Total:    int64(len(rules)),
			Page:     1,
			PageSize: len(rules),
		}, nil
	}

	rules, total, err := uc.ruleRepo.List(ctx, query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}

	return &ListRulesResult{
		Rules:    dto.FromRules(rules),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
