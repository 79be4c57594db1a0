package mappers

import (
	"encoding/json"
	"fmt"
	"sort"

	"gorm.io/datatypes"

	"academy/internal/domain/assignment"
	vo "academy/internal/domain/assignment/valueobjects"
	"academy/internal/domain/enrollment"
	"academy/internal/infrastructure/persistence/models"
)

// RuleMapper provides methods for converting between domain and model
type RuleMapper interface {
	ToDomain(model *models.AssignmentRuleModel) (*assignment.Rule, error)
	ToModel(domain *assignment.Rule) *models.AssignmentRuleModel
	ToDomainList(modelList []*models.AssignmentRuleModel) ([]*assignment.Rule, error)
}

// RuleMapperImpl implements RuleMapper
type RuleMapperImpl struct{}

// NewRuleMapper creates a new RuleMapper
func NewRuleMapper() RuleMapper {
	return &RuleMapperImpl{}
}

// ToDomain converts an AssignmentRuleModel to a Rule domain aggregate
func (m *RuleMapperImpl) ToDomain(model *models.AssignmentRuleModel) (*assignment.Rule, error) {
	if model == nil {
		return nil, nil
	}

	criteriaModels := make([]models.RuleCriterionModel, len(model.Criteria))
	copy(criteriaModels, model.Criteria)
	sort.SliceStable(criteriaModels, func(i, j int) bool {
		return criteriaModels[i].OrderIndex < criteriaModels[j].OrderIndex
	})

	criteria := make([]assignment.Criterion, 0, len(criteriaModels))
	for _, cm := range criteriaModels {
		c, err := assignment.ReconstructCriterion(cm.ID, cm.FieldName, vo.Operator(cm.Operator), cm.FieldValue, cm.OrderIndex)
		if err != nil {
			return nil, fmt.Errorf("criterion %d: %w", cm.ID, err)
		}
		criteria = append(criteria, c)
	}

	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("rule %d metadata: %w", model.ID, err)
		}
	}

	return assignment.ReconstructRule(assignment.RuleReconstructParams{
		ID:               model.ID,
		Name:             model.Name,
		Description:      model.Description,
		CourseID:         model.CourseID,
		Status:           vo.RuleStatus(model.Status),
		Enabled:          model.Enabled,
		EnrollmentType:   enrollment.Type(model.EnrollmentType),
		DueDays:          model.DueDays,
		Frequency:        vo.ExecutionFrequency(model.Frequency),
		MatchLogic:       vo.MatchLogic(model.MatchLogic),
		Criteria:         criteria,
		LastExecutedAt:   model.LastExecutedAt,
		LastMatchedCount: model.LastMatchedCount,
		Metadata:         metadata,
		CreatedBy:        model.CreatedBy,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	})
}

// ToModel converts a Rule domain aggregate to an AssignmentRuleModel
func (m *RuleMapperImpl) ToModel(domain *assignment.Rule) *models.AssignmentRuleModel {
	if domain == nil {
		return nil
	}

	criteria := domain.Criteria()
	criteriaModels := make([]models.RuleCriterionModel, 0, len(criteria))
	for _, c := range criteria {
		criteriaModels = append(criteriaModels, models.RuleCriterionModel{
			ID:         c.ID(),
			RuleID:     domain.ID(),
			FieldName:  c.FieldName(),
			Operator:   c.Operator().String(),
			FieldValue: c.FieldValue(),
			OrderIndex: c.OrderIndex(),
		})
	}

	var metadata datatypes.JSON
	if len(domain.Metadata()) > 0 {
		if raw, err := json.Marshal(domain.Metadata()); err == nil {
			metadata = raw
		}
	}

	return &models.AssignmentRuleModel{
		ID:               domain.ID(),
		Name:             domain.Name(),
		Description:      domain.Description(),
		CourseID:         domain.CourseID(),
		Status:           domain.Status().String(),
		Enabled:          domain.Enabled(),
		EnrollmentType:   string(domain.EnrollmentType()),
		DueDays:          domain.DueDays(),
		Frequency:        domain.Frequency().String(),
		MatchLogic:       domain.MatchLogic().String(),
		LastExecutedAt:   domain.LastExecutedAt(),
		LastMatchedCount: domain.LastMatchedCount(),
		Metadata:         metadata,
		CreatedBy:        domain.CreatedBy(),
		CreatedAt:        domain.CreatedAt(),
		UpdatedAt:        domain.UpdatedAt(),
		Criteria:         criteriaModels,
	}
}

// ToDomainList converts a list of AssignmentRuleModel to domain aggregates
func (m *RuleMapperImpl) ToDomainList(modelList []*models.AssignmentRuleModel) ([]*assignment.Rule, error) {
	if modelList == nil {
		return nil, nil
	}

	domains := make([]*assignment.Rule, 0, len(modelList))
	for _, model := range modelList {
		domain, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		if domain != nil {
			domains = append(domains, domain)
		}
	}
	return domains, nil
}
