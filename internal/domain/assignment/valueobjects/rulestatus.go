package valueobjects

// RuleStatus represents the lifecycle state of an assignment rule.
type RuleStatus string

const (
	RuleStatusDraft    RuleStatus = "DRAFT"
	RuleStatusActive   RuleStatus = "ACTIVE"
	RuleStatusInactive RuleStatus = "INACTIVE"
	RuleStatusArchived RuleStatus = "ARCHIVED"
)

// ValidRuleStatuses enumerates the accepted rule statuses.
var ValidRuleStatuses = map[RuleStatus]bool{
	RuleStatusDraft:    true,
	RuleStatusActive:   true,
	RuleStatusInactive: true,
	RuleStatusArchived: true,
}

func (s RuleStatus) String() string {
	return string(s)
}

// IsActive reports whether rules in this status are eligible for execution.
func (s RuleStatus) IsActive() bool {
	return s == RuleStatusActive
}
