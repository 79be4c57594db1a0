package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"academy/internal/domain/assignment"
	vo "academy/internal/domain/assignment/valueobjects"
	"academy/internal/infrastructure/persistence/mappers"
	"academy/internal/infrastructure/persistence/models"
	"academy/internal/shared/logger"
)

// AssignmentRuleRepository implements assignment.RuleRepository
type AssignmentRuleRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.RuleMapper
}

// NewAssignmentRuleRepository creates a new AssignmentRuleRepository
func NewAssignmentRuleRepository(db *gorm.DB, logger logger.Interface) assignment.RuleRepository {
	return &AssignmentRuleRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewRuleMapper(),
	}
}

// Create persists a rule with its criteria in one transaction
func (r *AssignmentRuleRepository) Create(ctx context.Context, rule *assignment.Rule) error {
	model := r.mapper.ToModel(rule)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Error("failed to create rule", "name", rule.Name(), "error", err)
		return fmt.Errorf("failed to create rule: %w", err)
	}

	if rule.ID() == 0 {
		if err := rule.SetID(model.ID); err != nil {
			return err
		}
	}
	return nil
}

// GetByID retrieves a rule with its criteria; nil when absent
func (r *AssignmentRuleRepository) GetByID(ctx context.Context, id uint) (*assignment.Rule, error) {
	var model models.AssignmentRuleModel

	err := r.db.WithContext(ctx).
		Preload("Criteria").
		First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Error("failed to get rule", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// List retrieves rules page by page, newest first
func (r *AssignmentRuleRepository) List(ctx context.Context, page, pageSize int) ([]*assignment.Rule, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.AssignmentRuleModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count rules: %w", err)
	}

	var modelList []*models.AssignmentRuleModel
	err := r.db.WithContext(ctx).
		Preload("Criteria").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Error("failed to list rules", "error", err)
		return nil, 0, fmt.Errorf("failed to list rules: %w", err)
	}

	rules, err := r.mapper.ToDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}
	return rules, total, nil
}

// ListByCourse retrieves all rules targeting one course
func (r *AssignmentRuleRepository) ListByCourse(ctx context.Context, courseID uint) ([]*assignment.Rule, error) {
	var modelList []*models.AssignmentRuleModel

	err := r.db.WithContext(ctx).
		Preload("Criteria").
		Where("course_id = ?", courseID).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Error("failed to list rules by course", "course_id", courseID, "error", err)
		return nil, fmt.Errorf("failed to list rules by course: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}

// ListActive retrieves every ACTIVE rule
func (r *AssignmentRuleRepository) ListActive(ctx context.Context) ([]*assignment.Rule, error) {
	var modelList []*models.AssignmentRuleModel

	err := r.db.WithContext(ctx).
		Preload("Criteria").
		Where("status = ? AND enabled = ?", vo.RuleStatusActive.String(), true).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Error("failed to list active rules", "error", err)
		return nil, fmt.Errorf("failed to list active rules: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}

// ListExecutable retrieves ACTIVE rules with the given frequency, oldest first
func (r *AssignmentRuleRepository) ListExecutable(ctx context.Context, frequency vo.ExecutionFrequency) ([]*assignment.Rule, error) {
	var modelList []*models.AssignmentRuleModel

	err := r.db.WithContext(ctx).
		Preload("Criteria").
		Where("status = ? AND enabled = ? AND frequency = ?", vo.RuleStatusActive.String(), true, frequency.String()).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Error("failed to list executable rules", "frequency", frequency.String(), "error", err)
		return nil, fmt.Errorf("failed to list executable rules: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}

// Update persists a rule and fully replaces its criteria in one transaction
func (r *AssignmentRuleRepository) Update(ctx context.Context, rule *assignment.Rule) error {
	model := r.mapper.ToModel(rule)
	criteria := model.Criteria
	model.Criteria = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.AssignmentRuleModel{}).
			Where("id = ?", model.ID).
			Select("name", "description", "course_id", "status", "enabled",
				"enrollment_type", "due_days", "frequency", "match_logic",
				"metadata", "updated_at").
			Updates(model).Error; err != nil {
			return err
		}

		if err := tx.Where("rule_id = ?", model.ID).
			Delete(&models.RuleCriterionModel{}).Error; err != nil {
			return err
		}
		for i := range criteria {
			criteria[i].ID = 0
			criteria[i].RuleID = model.ID
		}
		if len(criteria) > 0 {
			if err := tx.Create(&criteria).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Error("failed to update rule", "id", rule.ID(), "error", err)
		return fmt.Errorf("failed to update rule: %w", err)
	}
	return nil
}

// UpdateExecutionInfo persists only the bookkeeping columns
func (r *AssignmentRuleRepository) UpdateExecutionInfo(ctx context.Context, rule *assignment.Rule) error {
	err := r.db.WithContext(ctx).Model(&models.AssignmentRuleModel{}).
		Where("id = ?", rule.ID()).
		Updates(map[string]interface{}{
			"last_executed_at":   rule.LastExecutedAt(),
			"last_matched_count": rule.LastMatchedCount(),
			"updated_at":         rule.UpdatedAt(),
		}).Error
	if err != nil {
		r.logger.Error("failed to update rule execution info", "id", rule.ID(), "error", err)
		return fmt.Errorf("failed to update rule execution info: %w", err)
	}
	return nil
}

// Delete removes a rule; criteria rows cascade
func (r *AssignmentRuleRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rule_id = ?", id).
			Delete(&models.RuleCriterionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.AssignmentRuleModel{}, id).Error
	})
	if err != nil {
		r.logger.Error("failed to delete rule", "id", id, "error", err)
		return fmt.Errorf("failed to delete rule: %w", err)
	}
	return nil
}
