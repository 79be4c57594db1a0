package assignment

import (
	"context"

	vo "academy/internal/domain/assignment/valueobjects"
)

// RuleRepository is the rule store port. Implementations persist the rule
// together with its criteria; criteria writes are always a full replace
// inside the same transaction as the rule row.
type RuleRepository interface {
	Create(ctx context.Context, rule *Rule) error
	GetByID(ctx context.Context, id uint) (*Rule, error)
	List(ctx context.Context, page, pageSize int) ([]*Rule, int64, error)
	ListByCourse(ctx context.Context, courseID uint) ([]*Rule, error)
	ListActive(ctx context.Context) ([]*Rule, error)

	// ListExecutable returns ACTIVE rules with the given frequency, oldest
	// first, so long-waiting rules are not starved by newer ones.
	ListExecutable(ctx context.Context, frequency vo.ExecutionFrequency) ([]*Rule, error)

	Update(ctx context.Context, rule *Rule) error

	// UpdateExecutionInfo persists only the bookkeeping columns so a run
	// does not clobber concurrent edits to the rule definition.
	UpdateExecutionInfo(ctx context.Context, rule *Rule) error

	Delete(ctx context.Context, id uint) error
}
