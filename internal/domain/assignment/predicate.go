package assignment

import (
	"fmt"
	"strings"
	"time"

	vo "academy/internal/domain/assignment/valueobjects"
	"academy/internal/domain/employee"
)

// Predicate is a compiled criterion: a boolean test over one directory record.
type Predicate func(*employee.Employee) bool

// Compile builds the predicate closure for the criterion.
//
// A blank value yields (nil, nil): the criterion is skipped, not an error.
// Unknown field names and unparsable date bounds return an error so the
// matcher can log and skip the criterion while the rest still apply.
//
// Ordered operators compare chronologically on date-valued fields and fall
// back to raw string comparison everywhere else. The string fallback is
// retained deliberately; see the lexicographic-comparison note in DESIGN.md.
func (c Criterion) Compile() (Predicate, error) {
	value := strings.TrimSpace(c.fieldValue)
	if value == "" {
		return nil, nil
	}

	fieldName := c.fieldName
	if !employee.KnownFields[fieldName] {
		return nil, fmt.Errorf("unknown field name: %s", fieldName)
	}

	switch c.operator {
	case vo.OperatorEquals:
		return func(e *employee.Employee) bool {
			raw, _ := e.Field(fieldName)
			return strings.EqualFold(strings.TrimSpace(raw), value)
		}, nil

	case vo.OperatorNotEquals:
		return func(e *employee.Employee) bool {
			raw, _ := e.Field(fieldName)
			return !strings.EqualFold(strings.TrimSpace(raw), value)
		}, nil

	case vo.OperatorContains:
		needle := strings.ToLower(value)
		return func(e *employee.Employee) bool {
			raw, _ := e.Field(fieldName)
			return strings.Contains(strings.ToLower(raw), needle)
		}, nil

	case vo.OperatorNotContains:
		needle := strings.ToLower(value)
		return func(e *employee.Employee) bool {
			raw, _ := e.Field(fieldName)
			return !strings.Contains(strings.ToLower(raw), needle)
		}, nil

	case vo.OperatorIn:
		set := splitValueList(value)
		return func(e *employee.Employee) bool {
			raw, _ := e.Field(fieldName)
			return set[strings.ToLower(strings.TrimSpace(raw))]
		}, nil

	case vo.OperatorNotIn:
		set := splitValueList(value)
		return func(e *employee.Employee) bool {
			raw, _ := e.Field(fieldName)
			return !set[strings.ToLower(strings.TrimSpace(raw))]
		}, nil

	case vo.OperatorGT, vo.OperatorLT, vo.OperatorGTE, vo.OperatorLTE:
		if employee.DateFieldNames[fieldName] {
			bound, err := time.Parse(employee.DateLayout, value)
			if err != nil {
				return nil, fmt.Errorf("invalid date value %q for field %s: %w", value, fieldName, err)
			}
			return compileDateCompare(fieldName, c.operator, bound), nil
		}
		return compileStringCompare(fieldName, c.operator, value), nil

	default:
		return nil, fmt.Errorf("unsupported operator: %s", c.operator)
	}
}

func compileDateCompare(fieldName string, op vo.Operator, bound time.Time) Predicate {
	return func(e *employee.Employee) bool {
		raw, _ := e.Field(fieldName)
		if raw == "" {
			return false
		}
		t, err := time.Parse(employee.DateLayout, raw)
		if err != nil {
			return false
		}
		switch op {
		case vo.OperatorGT:
			return t.After(bound)
		case vo.OperatorLT:
			return t.Before(bound)
		case vo.OperatorGTE:
			return !t.Before(bound)
		case vo.OperatorLTE:
			return !t.After(bound)
		}
		return false
	}
}

func compileStringCompare(fieldName string, op vo.Operator, value string) Predicate {
	return func(e *employee.Employee) bool {
		raw, _ := e.Field(fieldName)
		cmp := strings.Compare(raw, value)
		switch op {
		case vo.OperatorGT:
			return cmp > 0
		case vo.OperatorLT:
			return cmp < 0
		case vo.OperatorGTE:
			return cmp >= 0
		case vo.OperatorLTE:
			return cmp <= 0
		}
		return false
	}
}

func splitValueList(value string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range strings.Split(value, ",") {
		set[strings.ToLower(strings.TrimSpace(token))] = true
	}
	return set
}

// CombinePredicates reduces compiled predicates with the given match logic.
// Zero predicates match nobody: a rule whose criteria all compiled away must
// not enroll the entire directory.
func CombinePredicates(preds []Predicate, logic vo.MatchLogic) Predicate {
	if len(preds) == 0 {
		return func(*employee.Employee) bool { return false }
	}

	if logic == vo.MatchLogicOr {
		return func(e *employee.Employee) bool {
			for _, p := range preds {
				if p(e) {
					return true
				}
			}
			return false
		}
	}

	return func(e *employee.Employee) bool {
		for _, p := range preds {
			if !p(e) {
				return false
			}
		}
		return true
	}
}
