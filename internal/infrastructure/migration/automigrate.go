package migration

import (
	"academy/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.EmployeeModel{},
		&models.CourseModel{},
		&models.AssignmentRuleModel{},
		&models.RuleCriterionModel{},
		&models.EnrollmentModel{},
	}
}
