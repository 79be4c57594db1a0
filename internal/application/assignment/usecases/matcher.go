package usecases

import (
	"context"

	"academy/internal/domain/assignment"
	"academy/internal/domain/employee"
	"academy/internal/shared/logger"
)

// Matcher evaluates a rule's criteria against the active directory snapshot.
//
// Criteria compile to predicate closures once per run; evaluation is then a
// pure in-memory filter. A criterion with a blank value contributes nothing.
// A criterion that fails to compile (unknown field, unparsable date bound)
// is logged and skipped while the remaining criteria still apply. If every
// criterion compiles away the rule matches nobody.
type Matcher struct {
	directory employee.Directory
	logger    logger.Interface
}

func NewMatcher(directory employee.Directory, logger logger.Interface) *Matcher {
	return &Matcher{
		directory: directory,
		logger:    logger,
	}
}

// Match returns the active employees the rule selects.
func (m *Matcher) Match(ctx context.Context, rule *assignment.Rule) ([]*employee.Employee, error) {
	preds := make([]assignment.Predicate, 0, len(rule.Criteria()))
	for _, criterion := range rule.Criteria() {
		pred, err := criterion.Compile()
		if err != nil {
			m.logger.Warnw("skipping criterion that failed to compile",
				"rule_id", rule.ID(),
				"field_name", criterion.FieldName(),
				"operator", criterion.Operator().String(),
				"error", err,
			)
			continue
		}
		if pred == nil {
			m.logger.Debugw("skipping blank-valued criterion",
				"rule_id", rule.ID(),
				"field_name", criterion.FieldName(),
			)
			continue
		}
		preds = append(preds, pred)
	}

	combined := assignment.CombinePredicates(preds, rule.MatchLogic())

	candidates, err := m.directory.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*employee.Employee, 0)
	for _, emp := range candidates {
		if combined(emp) {
			matched = append(matched, emp)
		}
	}
	return matched, nil
}
