package assignment

import "time"

// ExecutionResult reports one rule run. Success reflects whether the run
// itself completed; per-candidate enrollment failures are collected in
// Errors and do not flip Success to false.
type ExecutionResult struct {
	RuleID       uint          `json:"rule_id"`
	RuleName     string        `json:"rule_name"`
	Success      bool          `json:"success"`
	TotalMatched int           `json:"total_matched"`
	Created      int           `json:"created"`
	Skipped      int           `json:"skipped"`
	Errors       []string      `json:"errors,omitempty"`
	Message      string        `json:"message,omitempty"`
	ExecutedAt   time.Time     `json:"executed_at"`
	Elapsed      time.Duration `json:"elapsed"`
}

// BatchResult aggregates a scheduled run over many rules.
type BatchResult struct {
	Frequency    string            `json:"frequency"`
	Total        int               `json:"total"`
	SuccessCount int               `json:"success_count"`
	FailureCount int               `json:"failure_count"`
	Results      []ExecutionResult `json:"results"`
	StartedAt    time.Time         `json:"started_at"`
	Elapsed      time.Duration     `json:"elapsed"`
}

// PreviewCandidate is one matched employee in a dry run.
type PreviewCandidate struct {
	EmployeeID      uint   `json:"employee_id"`
	EmployeeCode    string `json:"employee_code"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Department      string `json:"department"`
	Designation     string `json:"designation"`
	AlreadyEnrolled bool   `json:"already_enrolled"`
}

// PreviewResult reports a dry run: who the rule would touch, with zero writes.
type PreviewResult struct {
	RuleID          uint               `json:"rule_id"`
	RuleName        string             `json:"rule_name"`
	TotalMatched    int                `json:"total_matched"`
	AlreadyEnrolled int                `json:"already_enrolled"`
	WillBeEnrolled  int                `json:"will_be_enrolled"`
	Candidates      []PreviewCandidate `json:"candidates"`
}
