package assignment

import (
	"testing"
	"time"

	vo "academy/internal/domain/assignment/valueobjects"
	"academy/internal/domain/employee"
)

func testEmployee(t *testing.T, department, designation, location string, joined string) *employee.Employee {
	t.Helper()

	dateOfJoining, err := time.Parse(employee.DateLayout, joined)
	if err != nil {
		t.Fatalf("parse joining date: %v", err)
	}

	emp, err := employee.Reconstruct(employee.ReconstructParams{
		ID:             1,
		EmployeeID:     "EMP-TEST0001",
		FirstName:      "Asha",
		LastName:       "Verma",
		Email:          "asha.verma@example.com",
		Department:     department,
		Designation:    designation,
		OfficeLocation: location,
		EmploymentType: employee.EmploymentFullTime,
		WorkMode:       employee.WorkModeOffice,
		DateOfJoining:  dateOfJoining,
		Status:         employee.StatusActive,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	})
	if err != nil {
		t.Fatalf("reconstruct employee: %v", err)
	}
	return emp
}

func mustCriterion(t *testing.T, field string, op vo.Operator, value string) Criterion {
	t.Helper()
	c, err := NewCriterion(field, op, value, 0)
	if err != nil {
		t.Fatalf("NewCriterion(%s %s %q): %v", field, op, value, err)
	}
	return c
}

func TestCriterionCompile_BlankValueSkips(t *testing.T) {
	c := mustCriterion(t, "department", vo.OperatorEquals, "   ")
	pred, err := c.Compile()
	if err != nil {
		t.Fatalf("Compile() error = %v, want nil", err)
	}
	if pred != nil {
		t.Error("Compile() with blank value should yield a nil predicate")
	}
}

func TestCriterionCompile_UnknownField(t *testing.T) {
	c := mustCriterion(t, "shoe_size", vo.OperatorEquals, "42")
	if _, err := c.Compile(); err == nil {
		t.Error("Compile() error = nil, want error for unknown field")
	}
}

func TestCriterionCompile_InvalidDateBound(t *testing.T) {
	c := mustCriterion(t, "date_of_joining", vo.OperatorGT, "not-a-date")
	if _, err := c.Compile(); err == nil {
		t.Error("Compile() error = nil, want error for unparsable date bound")
	}
}

func TestPredicate_Equality(t *testing.T) {
	emp := testEmployee(t, "Engineering", "Senior Engineer", "Bengaluru", "2024-03-01")

	tests := []struct {
		name    string
		field   string
		op      vo.Operator
		value   string
		matched bool
	}{
		{"equals exact", "department", vo.OperatorEquals, "Engineering", true},
		{"equals case insensitive", "department", vo.OperatorEquals, "engineering", true},
		{"equals trims value", "department", vo.OperatorEquals, "  Engineering  ", true},
		{"equals mismatch", "department", vo.OperatorEquals, "Sales", false},
		{"not equals mismatch", "department", vo.OperatorNotEquals, "Sales", true},
		{"not equals match", "department", vo.OperatorNotEquals, "ENGINEERING", false},
		{"contains substring", "designation", vo.OperatorContains, "senior", true},
		{"contains absent", "designation", vo.OperatorContains, "manager", false},
		{"not contains absent", "designation", vo.OperatorNotContains, "manager", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := mustCriterion(t, tt.field, tt.op, tt.value).Compile()
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			if got := pred(emp); got != tt.matched {
				t.Errorf("predicate(%s %s %q) = %v, want %v", tt.field, tt.op, tt.value, got, tt.matched)
			}
		})
	}
}

func TestPredicate_InLists(t *testing.T) {
	emp := testEmployee(t, "Engineering", "Engineer", "Pune", "2024-03-01")

	tests := []struct {
		name    string
		op      vo.Operator
		value   string
		matched bool
	}{
		{"in with spaces and case", vo.OperatorIn, "Mumbai , PUNE, Delhi", true},
		{"in absent", vo.OperatorIn, "Mumbai,Delhi", false},
		{"not in absent", vo.OperatorNotIn, "Mumbai,Delhi", true},
		{"not in present", vo.OperatorNotIn, "pune", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := mustCriterion(t, "office_location", tt.op, tt.value).Compile()
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			if got := pred(emp); got != tt.matched {
				t.Errorf("predicate(office_location %s %q) = %v, want %v", tt.op, tt.value, got, tt.matched)
			}
		})
	}
}

func TestPredicate_DateComparison(t *testing.T) {
	emp := testEmployee(t, "Engineering", "Engineer", "Pune", "2024-03-15")

	tests := []struct {
		name    string
		op      vo.Operator
		value   string
		matched bool
	}{
		{"gt earlier bound", vo.OperatorGT, "2024-01-01", true},
		{"gt later bound", vo.OperatorGT, "2025-01-01", false},
		{"lt later bound", vo.OperatorLT, "2025-01-01", true},
		{"gte equal bound", vo.OperatorGTE, "2024-03-15", true},
		{"lte equal bound", vo.OperatorLTE, "2024-03-15", true},
		{"lt equal bound", vo.OperatorLT, "2024-03-15", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := mustCriterion(t, "date_of_joining", tt.op, tt.value).Compile()
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			if got := pred(emp); got != tt.matched {
				t.Errorf("predicate(date_of_joining %s %q) = %v, want %v", tt.op, tt.value, got, tt.matched)
			}
		})
	}
}

func TestPredicate_DateComparisonMissingValue(t *testing.T) {
	// date_of_birth is optional and resolves to "" when unset.
	emp := testEmployee(t, "Engineering", "Engineer", "Pune", "2024-03-01")

	pred, err := mustCriterion(t, "date_of_birth", vo.OperatorLT, "2000-01-01").Compile()
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if pred(emp) {
		t.Error("predicate should not match an employee without the date field set")
	}
}

func TestPredicate_StringOrderingFallback(t *testing.T) {
	emp := testEmployee(t, "Engineering", "Engineer", "Pune", "2024-03-01")

	// Non-date fields compare as raw strings under ordered operators.
	pred, err := mustCriterion(t, "department", vo.OperatorGT, "Accounting").Compile()
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if !pred(emp) {
		t.Error(`"Engineering" GT "Accounting" should match under string ordering`)
	}

	pred, err = mustCriterion(t, "department", vo.OperatorLT, "Accounting").Compile()
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if pred(emp) {
		t.Error(`"Engineering" LT "Accounting" should not match under string ordering`)
	}
}

func TestCombinePredicates(t *testing.T) {
	yes := Predicate(func(*employee.Employee) bool { return true })
	no := Predicate(func(*employee.Employee) bool { return false })

	tests := []struct {
		name    string
		preds   []Predicate
		logic   vo.MatchLogic
		matched bool
	}{
		{"and all true", []Predicate{yes, yes}, vo.MatchLogicAnd, true},
		{"and one false", []Predicate{yes, no}, vo.MatchLogicAnd, false},
		{"or one true", []Predicate{no, yes}, vo.MatchLogicOr, true},
		{"or all false", []Predicate{no, no}, vo.MatchLogicOr, false},
		{"empty and matches nobody", nil, vo.MatchLogicAnd, false},
		{"empty or matches nobody", nil, vo.MatchLogicOr, false},
	}

	emp := testEmployee(t, "Engineering", "Engineer", "Pune", "2024-03-01")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CombinePredicates(tt.preds, tt.logic)(emp); got != tt.matched {
				t.Errorf("CombinePredicates(%s) = %v, want %v", tt.logic, got, tt.matched)
			}
		})
	}
}
