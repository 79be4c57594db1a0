package assignment

import (
	"fmt"
	"strings"

	vo "academy/internal/domain/assignment/valueobjects"
)

// Criterion is one atomic attribute test composing a rule. Criteria are
// owned by their rule and cannot outlive it.
type Criterion struct {
	id         uint
	fieldName  string
	operator   vo.Operator
	fieldValue string
	orderIndex int
}

// NewCriterion creates a criterion. The value may be blank; blank-valued
// criteria compile to no predicate and are skipped at evaluation time.
func NewCriterion(fieldName string, operator vo.Operator, fieldValue string, orderIndex int) (Criterion, error) {
	fieldName = strings.ToLower(strings.TrimSpace(fieldName))
	if fieldName == "" {
		return Criterion{}, fmt.Errorf("criterion field name is required")
	}
	if !vo.ValidOperators[operator] {
		return Criterion{}, fmt.Errorf("invalid criterion operator: %s", operator)
	}

	return Criterion{
		fieldName:  fieldName,
		operator:   operator,
		fieldValue: fieldValue,
		orderIndex: orderIndex,
	}, nil
}

// ReconstructCriterion rebuilds a criterion from persistence.
func ReconstructCriterion(id uint, fieldName string, operator vo.Operator, fieldValue string, orderIndex int) (Criterion, error) {
	c, err := NewCriterion(fieldName, operator, fieldValue, orderIndex)
	if err != nil {
		return Criterion{}, err
	}
	c.id = id
	return c, nil
}

func (c Criterion) ID() uint              { return c.id }
func (c Criterion) FieldName() string     { return c.fieldName }
func (c Criterion) Operator() vo.Operator { return c.operator }
func (c Criterion) FieldValue() string    { return c.fieldValue }
func (c Criterion) OrderIndex() int       { return c.orderIndex }
