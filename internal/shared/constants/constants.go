package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Database table names
	TableAssignmentRules = "assignment_rules"
	TableRuleCriteria    = "rule_criteria"
	TableEmployees       = "employees"
	TableCourses         = "courses"
	TableEnrollments     = "enrollments"
)
