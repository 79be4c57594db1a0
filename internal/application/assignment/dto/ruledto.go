package dto

import (
	"time"

	"academy/internal/domain/assignment"
)

// CriterionDTO is the transport representation of one rule criterion.
type CriterionDTO struct {
	ID         uint   `json:"id,omitempty"`
	FieldName  string `json:"field_name"`
	Operator   string `json:"operator"`
	FieldValue string `json:"field_value"`
	OrderIndex int    `json:"order_index"`
}

// RuleDTO is the transport representation of an assignment rule.
type RuleDTO struct {
	ID               uint           `json:"id"`
	Name             string         `json:"name"`
	Description      string         `json:"description,omitempty"`
	CourseID         uint           `json:"course_id"`
	Status           string         `json:"status"`
	Enabled          bool           `json:"enabled"`
	EnrollmentType   string         `json:"enrollment_type"`
	DueDays          *int           `json:"due_days,omitempty"`
	Frequency        string         `json:"frequency"`
	MatchLogic       string         `json:"match_logic"`
	Criteria         []CriterionDTO `json:"criteria"`
	LastExecutedAt   *time.Time     `json:"last_executed_at,omitempty"`
	LastMatchedCount *int           `json:"last_matched_count,omitempty"`
	CreatedBy        string         `json:"created_by,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// FromRule maps a rule aggregate to its transport form.
func FromRule(rule *assignment.Rule) *RuleDTO {
	criteria := rule.Criteria()
	criteriaDTOs := make([]CriterionDTO, 0, len(criteria))
	for _, c := range criteria {
		criteriaDTOs = append(criteriaDTOs, CriterionDTO{
			ID:         c.ID(),
			FieldName:  c.FieldName(),
			Operator:   c.Operator().String(),
			FieldValue: c.FieldValue(),
			OrderIndex: c.OrderIndex(),
		})
	}

	return &RuleDTO{
		ID:               rule.ID(),
		Name:             rule.Name(),
		Description:      rule.Description(),
		CourseID:         rule.CourseID(),
		Status:           rule.Status().String(),
		Enabled:          rule.Enabled(),
		EnrollmentType:   string(rule.EnrollmentType()),
		DueDays:          rule.DueDays(),
		Frequency:        rule.Frequency().String(),
		MatchLogic:       rule.MatchLogic().String(),
		Criteria:         criteriaDTOs,
		LastExecutedAt:   rule.LastExecutedAt(),
		LastMatchedCount: rule.LastMatchedCount(),
		CreatedBy:        rule.CreatedBy(),
		CreatedAt:        rule.CreatedAt(),
		UpdatedAt:        rule.UpdatedAt(),
	}
}

// FromRules maps a slice of rule aggregates.
func FromRules(rules []*assignment.Rule) []*RuleDTO {
	out := make([]*RuleDTO, 0, len(rules))
	for _, r := range rules {
		out = append(out, FromRule(r))
	}
	return out
}
