package assignment

import (
	"testing"
	"time"

	vo "academy/internal/domain/assignment/valueobjects"
	"academy/internal/domain/enrollment"
)

func testCriteria(t *testing.T) []Criterion {
	t.Helper()
	c, err := NewCriterion("department", vo.OperatorEquals, "Engineering", 0)
	if err != nil {
		t.Fatalf("NewCriterion: %v", err)
	}
	return []Criterion{c}
}

func testRule(t *testing.T) *Rule {
	t.Helper()
	r, err := NewRule("Engineering onboarding", "", 10, enrollment.TypeMandatory, nil, vo.FrequencyDaily, vo.MatchLogicAnd, testCriteria(t), "admin")
	if err != nil {
		t.Fatalf("NewRule: %v", err)
	}
	return r
}

func TestNewRule_Defaults(t *testing.T) {
	r := testRule(t)

	if r.Status() != vo.RuleStatusActive {
		t.Errorf("Status() = %v, want %v", r.Status(), vo.RuleStatusActive)
	}
	if !r.Enabled() {
		t.Error("Enabled() = false, want true for a new rule")
	}
	if !r.IsExecutable() {
		t.Error("IsExecutable() = false, want true for a new rule")
	}
	if r.LastExecutedAt() != nil || r.LastMatchedCount() != nil {
		t.Error("new rule should have no execution bookkeeping")
	}
}

func TestNewRule_Validation(t *testing.T) {
	tests := []struct {
		name     string
		ruleName string
		courseID uint
		criteria func(*testing.T) []Criterion
		dueDays  *int
	}{
		{"blank name", "  ", 10, testCriteria, nil},
		{"missing course", "Rule", 0, testCriteria, nil},
		{"no criteria", "Rule", 10, func(*testing.T) []Criterion { return nil }, nil},
		{"negative due days", "Rule", 10, testCriteria, intPtr(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRule(tt.ruleName, "", tt.courseID, enrollment.TypeMandatory, tt.dueDays, vo.FrequencyDaily, vo.MatchLogicAnd, tt.criteria(t), "admin")
			if err == nil {
				t.Error("NewRule() error = nil, want error")
			}
		})
	}
}

func TestRule_StatusTransitionsKeepEnabledAligned(t *testing.T) {
	r := testRule(t)

	r.Deactivate()
	if r.Status() != vo.RuleStatusInactive || r.Enabled() {
		t.Errorf("after Deactivate: status=%v enabled=%v, want INACTIVE/false", r.Status(), r.Enabled())
	}
	if r.IsExecutable() {
		t.Error("deactivated rule must not be executable")
	}

	r.Activate()
	if r.Status() != vo.RuleStatusActive || !r.Enabled() {
		t.Errorf("after Activate: status=%v enabled=%v, want ACTIVE/true", r.Status(), r.Enabled())
	}

	r.Archive()
	if r.Status() != vo.RuleStatusArchived || r.Enabled() {
		t.Errorf("after Archive: status=%v enabled=%v, want ARCHIVED/false", r.Status(), r.Enabled())
	}
}

func TestReconstructRule_RealignsEnabledWithStatus(t *testing.T) {
	tests := []struct {
		name        string
		status      vo.RuleStatus
		storedFlag  bool
		wantEnabled bool
	}{
		{"active row with stale false flag", vo.RuleStatusActive, false, true},
		{"inactive row with stale true flag", vo.RuleStatusInactive, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ReconstructRule(RuleReconstructParams{
				ID:             1,
				Name:           "Rule",
				CourseID:       10,
				Status:         tt.status,
				Enabled:        tt.storedFlag,
				EnrollmentType: enrollment.TypeMandatory,
				Frequency:      vo.FrequencyDaily,
				MatchLogic:     vo.MatchLogicAnd,
				Criteria:       testCriteria(t),
				CreatedAt:      time.Now(),
				UpdatedAt:      time.Now(),
			})
			if err != nil {
				t.Fatalf("ReconstructRule: %v", err)
			}
			if r.Enabled() != tt.wantEnabled {
				t.Errorf("Enabled() = %v, want %v", r.Enabled(), tt.wantEnabled)
			}
		})
	}
}

func TestRule_ReplaceCriteria(t *testing.T) {
	r := testRule(t)

	if err := r.ReplaceCriteria(nil); err == nil {
		t.Error("ReplaceCriteria(nil) error = nil, want error")
	}

	c1, _ := NewCriterion("office_location", vo.OperatorIn, "Pune,Mumbai", 0)
	c2, _ := NewCriterion("work_mode", vo.OperatorEquals, "REMOTE", 1)
	if err := r.ReplaceCriteria([]Criterion{c1, c2}); err != nil {
		t.Fatalf("ReplaceCriteria: %v", err)
	}
	if got := len(r.Criteria()); got != 2 {
		t.Errorf("len(Criteria()) = %d, want 2", got)
	}
}

func TestRule_RecordExecution(t *testing.T) {
	r := testRule(t)
	ranAt := time.Date(2026, 8, 30, 2, 0, 0, 0, time.UTC)

	r.RecordExecution(ranAt, 7)

	if r.LastExecutedAt() == nil || !r.LastExecutedAt().Equal(ranAt) {
		t.Errorf("LastExecutedAt() = %v, want %v", r.LastExecutedAt(), ranAt)
	}
	if r.LastMatchedCount() == nil || *r.LastMatchedCount() != 7 {
		t.Errorf("LastMatchedCount() = %v, want 7", r.LastMatchedCount())
	}
}

func TestRule_UpdateDetailsNormalizesMatchLogic(t *testing.T) {
	r := testRule(t)

	if err := r.UpdateDetails("Rule", "", 10, enrollment.TypeOptional, nil, vo.FrequencyWeekly, vo.MatchLogic("bogus")); err != nil {
		t.Fatalf("UpdateDetails: %v", err)
	}
	if r.MatchLogic() != vo.MatchLogicAnd {
		t.Errorf("MatchLogic() = %v, want %v", r.MatchLogic(), vo.MatchLogicAnd)
	}
	if r.Frequency() != vo.FrequencyWeekly {
		t.Errorf("Frequency() = %v, want %v", r.Frequency(), vo.FrequencyWeekly)
	}
}

func intPtr(v int) *int { return &v }
