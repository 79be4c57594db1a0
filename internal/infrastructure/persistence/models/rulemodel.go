package models

import (
	"time"

	"gorm.io/datatypes"

	"academy/internal/shared/constants"
)

// AssignmentRuleModel is the persistence model for assignment rules.
// This is the anti-corruption layer between domain and database.
type AssignmentRuleModel struct {
	ID               uint   `gorm:"primarykey"`
	Name             string `gorm:"not null;size:255"`
	Description      string `gorm:"type:text"`
	CourseID         uint   `gorm:"not null;index:idx_rules_course"`
	Status           string `gorm:"not null;default:ACTIVE;size:20;index:idx_rules_status"`
	Enabled          bool   `gorm:"not null;default:true"`
	EnrollmentType   string `gorm:"not null;size:20"`
	DueDays          *int
	Frequency        string `gorm:"not null;size:20;index:idx_rules_frequency"`
	MatchLogic       string `gorm:"not null;default:AND;size:10"`
	LastExecutedAt   *time.Time
	LastMatchedCount *int
	Metadata         datatypes.JSON
	CreatedBy        string `gorm:"size:100"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Criteria []RuleCriterionModel `gorm:"foreignKey:RuleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (AssignmentRuleModel) TableName() string {
	return constants.TableAssignmentRules
}

// RuleCriterionModel is the persistence model for rule criteria. Criteria
// rows are owned by their rule and cascade on delete.
type RuleCriterionModel struct {
	ID         uint   `gorm:"primarykey"`
	RuleID     uint   `gorm:"not null;index:idx_criteria_rule"`
	FieldName  string `gorm:"not null;size:100"`
	Operator   string `gorm:"not null;size:20"`
	FieldValue string `gorm:"type:text"`
	OrderIndex int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM
func (RuleCriterionModel) TableName() string {
	return constants.TableRuleCriteria
}
