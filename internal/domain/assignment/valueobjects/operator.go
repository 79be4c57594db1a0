package valueobjects

import (
	"fmt"
	"strings"
)

// Operator is the comparison applied by a single criterion.
type Operator string

const (
	OperatorEquals      Operator = "EQUALS"
	OperatorNotEquals   Operator = "NOT_EQUALS"
	OperatorContains    Operator = "CONTAINS"
	OperatorNotContains Operator = "NOT_CONTAINS"
	OperatorIn          Operator = "IN"
	OperatorNotIn       Operator = "NOT_IN"
	OperatorGT          Operator = "GT"
	OperatorLT          Operator = "LT"
	OperatorGTE         Operator = "GTE"
	OperatorLTE         Operator = "LTE"
)

// ValidOperators enumerates the supported criterion operators.
var ValidOperators = map[Operator]bool{
	OperatorEquals:      true,
	OperatorNotEquals:   true,
	OperatorContains:    true,
	OperatorNotContains: true,
	OperatorIn:          true,
	OperatorNotIn:       true,
	OperatorGT:          true,
	OperatorLT:          true,
	OperatorGTE:         true,
	OperatorLTE:         true,
}

func (o Operator) String() string {
	return string(o)
}

// IsOrdered reports whether the operator compares magnitudes rather than
// testing membership or equality.
func (o Operator) IsOrdered() bool {
	switch o {
	case OperatorGT, OperatorLT, OperatorGTE, OperatorLTE:
		return true
	}
	return false
}

// ParseOperator validates and normalizes an operator string.
func ParseOperator(value string) (Operator, error) {
	op := Operator(strings.ToUpper(strings.TrimSpace(value)))
	if !ValidOperators[op] {
		return "", fmt.Errorf("invalid operator: %s", value)
	}
	return op, nil
}
