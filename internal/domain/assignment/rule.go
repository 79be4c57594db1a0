package assignment

import (
	"fmt"
	"strings"
	"time"

	vo "academy/internal/domain/assignment/valueobjects"
	"academy/internal/domain/enrollment"
)

// Rule is the assignment aggregate root: which employees get auto-enrolled
// into which course, how, and when.
//
// The enabled flag is kept alongside status for schema compatibility; the
// invariant enabled == (status == ACTIVE) is enforced by every mutator and
// status is the single source of truth.
type Rule struct {
	id               uint
	name             string
	description      string
	courseID         uint
	status           vo.RuleStatus
	enabled          bool
	enrollmentType   enrollment.Type
	dueDays          *int
	frequency        vo.ExecutionFrequency
	matchLogic       vo.MatchLogic
	criteria         []Criterion
	lastExecutedAt   *time.Time
	lastMatchedCount *int
	metadata         map[string]interface{}
	createdBy        string
	createdAt        time.Time
	updatedAt        time.Time
}

// NewRule creates a rule. Rules are created ACTIVE and require at least one
// criterion and exactly one target course.
func NewRule(name, description string, courseID uint, enrollmentType enrollment.Type, dueDays *int, frequency vo.ExecutionFrequency, matchLogic vo.MatchLogic, criteria []Criterion, createdBy string) (*Rule, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("rule name is required")
	}
	if courseID == 0 {
		return nil, fmt.Errorf("rule requires a target course")
	}
	if len(criteria) == 0 {
		return nil, fmt.Errorf("at least one criterion is required")
	}
	if !enrollment.ValidTypes[enrollmentType] {
		return nil, fmt.Errorf("invalid enrollment type: %s", enrollmentType)
	}
	if !vo.ValidFrequencies[frequency] {
		return nil, fmt.Errorf("invalid execution frequency: %s", frequency)
	}
	if dueDays != nil && *dueDays < 0 {
		return nil, fmt.Errorf("due days cannot be negative")
	}
	if matchLogic != vo.MatchLogicOr {
		matchLogic = vo.MatchLogicAnd
	}

	now := time.Now().UTC()
	return &Rule{
		name:           strings.TrimSpace(name),
		description:    description,
		courseID:       courseID,
		status:         vo.RuleStatusActive,
		enabled:        true,
		enrollmentType: enrollmentType,
		dueDays:        dueDays,
		frequency:      frequency,
		matchLogic:     matchLogic,
		criteria:       criteria,
		metadata:       make(map[string]interface{}),
		createdBy:      createdBy,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// RuleReconstructParams carries the full persisted state of a rule.
type RuleReconstructParams struct {
	ID               uint
	Name             string
	Description      string
	CourseID         uint
	Status           vo.RuleStatus
	Enabled          bool
	EnrollmentType   enrollment.Type
	DueDays          *int
	Frequency        vo.ExecutionFrequency
	MatchLogic       vo.MatchLogic
	Criteria         []Criterion
	LastExecutedAt   *time.Time
	LastMatchedCount *int
	Metadata         map[string]interface{}
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ReconstructRule rebuilds a rule from persistence. The enabled flag is
// realigned with status rather than trusted, so rows written by older code
// cannot smuggle in a divergent pair.
func ReconstructRule(p RuleReconstructParams) (*Rule, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("rule ID cannot be zero")
	}
	if !vo.ValidRuleStatuses[p.Status] {
		return nil, fmt.Errorf("invalid rule status: %s", p.Status)
	}
	if !enrollment.ValidTypes[p.EnrollmentType] {
		return nil, fmt.Errorf("invalid enrollment type: %s", p.EnrollmentType)
	}
	if !vo.ValidFrequencies[p.Frequency] {
		return nil, fmt.Errorf("invalid execution frequency: %s", p.Frequency)
	}
	if p.MatchLogic != vo.MatchLogicOr {
		p.MatchLogic = vo.MatchLogicAnd
	}
	if p.Metadata == nil {
		p.Metadata = make(map[string]interface{})
	}

	return &Rule{
		id:               p.ID,
		name:             p.Name,
		description:      p.Description,
		courseID:         p.CourseID,
		status:           p.Status,
		enabled:          p.Status == vo.RuleStatusActive,
		enrollmentType:   p.EnrollmentType,
		dueDays:          p.DueDays,
		frequency:        p.Frequency,
		matchLogic:       p.MatchLogic,
		criteria:         p.Criteria,
		lastExecutedAt:   p.LastExecutedAt,
		lastMatchedCount: p.LastMatchedCount,
		metadata:         p.Metadata,
		createdBy:        p.CreatedBy,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}, nil
}

// SetID assigns the database identity after insert.
func (r *Rule) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("rule ID already set")
	}
	if id == 0 {
		return fmt.Errorf("rule ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Rule) ID() uint                            { return r.id }
func (r *Rule) Name() string                        { return r.name }
func (r *Rule) Description() string                 { return r.description }
func (r *Rule) CourseID() uint                      { return r.courseID }
func (r *Rule) Status() vo.RuleStatus               { return r.status }
func (r *Rule) Enabled() bool                       { return r.enabled }
func (r *Rule) EnrollmentType() enrollment.Type     { return r.enrollmentType }
func (r *Rule) DueDays() *int                       { return r.dueDays }
func (r *Rule) Frequency() vo.ExecutionFrequency    { return r.frequency }
func (r *Rule) MatchLogic() vo.MatchLogic           { return r.matchLogic }
func (r *Rule) LastExecutedAt() *time.Time          { return r.lastExecutedAt }
func (r *Rule) LastMatchedCount() *int              { return r.lastMatchedCount }
func (r *Rule) Metadata() map[string]interface{}    { return r.metadata }
func (r *Rule) CreatedBy() string                   { return r.createdBy }
func (r *Rule) CreatedAt() time.Time                { return r.createdAt }
func (r *Rule) UpdatedAt() time.Time                { return r.updatedAt }

// Criteria returns the rule's criteria ordered by order index as persisted.
// The order is display/audit only; combinators are commutative.
func (r *Rule) Criteria() []Criterion {
	out := make([]Criterion, len(r.criteria))
	copy(out, r.criteria)
	return out
}

// IsExecutable reports whether the execution engine may run this rule.
func (r *Rule) IsExecutable() bool {
	return r.enabled && r.status == vo.RuleStatusActive && len(r.criteria) > 0
}

// Activate transitions the rule to ACTIVE and realigns the enabled flag.
func (r *Rule) Activate() {
	r.status = vo.RuleStatusActive
	r.enabled = true
	r.updatedAt = time.Now().UTC()
}

// Deactivate transitions the rule to INACTIVE and realigns the enabled flag.
func (r *Rule) Deactivate() {
	r.status = vo.RuleStatusInactive
	r.enabled = false
	r.updatedAt = time.Now().UTC()
}

// Archive retires the rule permanently.
func (r *Rule) Archive() {
	r.status = vo.RuleStatusArchived
	r.enabled = false
	r.updatedAt = time.Now().UTC()
}

// UpdateDetails replaces the rule's defining fields. Bookkeeping fields are
// untouched; only the execution engine writes those.
func (r *Rule) UpdateDetails(name, description string, courseID uint, enrollmentType enrollment.Type, dueDays *int, frequency vo.ExecutionFrequency, matchLogic vo.MatchLogic) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("rule name is required")
	}
	if courseID == 0 {
		return fmt.Errorf("rule requires a target course")
	}
	if !enrollment.ValidTypes[enrollmentType] {
		return fmt.Errorf("invalid enrollment type: %s", enrollmentType)
	}
	if !vo.ValidFrequencies[frequency] {
		return fmt.Errorf("invalid execution frequency: %s", frequency)
	}
	if dueDays != nil && *dueDays < 0 {
		return fmt.Errorf("due days cannot be negative")
	}
	if matchLogic != vo.MatchLogicOr {
		matchLogic = vo.MatchLogicAnd
	}

	r.name = strings.TrimSpace(name)
	r.description = description
	r.courseID = courseID
	r.enrollmentType = enrollmentType
	r.dueDays = dueDays
	r.frequency = frequency
	r.matchLogic = matchLogic
	r.updatedAt = time.Now().UTC()
	return nil
}

// ReplaceCriteria swaps the full criteria collection. Updates are always a
// full replace; incremental criteria patches are not supported.
func (r *Rule) ReplaceCriteria(criteria []Criterion) error {
	if len(criteria) == 0 {
		return fmt.Errorf("at least one criterion is required")
	}
	r.criteria = criteria
	r.updatedAt = time.Now().UTC()
	return nil
}

// RecordExecution writes the bookkeeping fields after a run completes.
func (r *Rule) RecordExecution(executedAt time.Time, matchedCount int) {
	r.lastExecutedAt = &executedAt
	r.lastMatchedCount = &matchedCount
	r.updatedAt = time.Now().UTC()
}
