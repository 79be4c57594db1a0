package http

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	assignmentUsecases "academy/internal/application/assignment/usecases"
	courseUsecases "academy/internal/application/course/usecases"
	employeeUsecases "academy/internal/application/employee/usecases"
	enrollmentUsecases "academy/internal/application/enrollment/usecases"
	"academy/internal/infrastructure/cache"
	"academy/internal/infrastructure/config"
	"academy/internal/infrastructure/repository"
	coursehandlers "academy/internal/interfaces/http/handlers/course"
	employeehandlers "academy/internal/interfaces/http/handlers/employee"
	rulehandlers "academy/internal/interfaces/http/handlers/rule"
	"academy/internal/shared/logger"
)

// Container wires repositories, use cases, and handlers together.
type Container struct {
	db  *gorm.DB
	cfg *config.Config
	log logger.Interface

	ruleHandler     *rulehandlers.RuleHandler
	courseHandler   *coursehandlers.CourseHandler
	employeeHandler *employeehandlers.EmployeeHandler

	scheduledRules *assignmentUsecases.ExecuteScheduledRulesUseCase
}

// NewContainer builds the full dependency graph. redisClient may be nil, in
// which case rule executions run without the cross-process lock.
func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Container {
	ruleRepo := repository.NewAssignmentRuleRepository(db, log)
	courseRepo := repository.NewCourseRepository(db, log)
	employeeRepo := repository.NewEmployeeRepository(db, log)
	enrollmentRepo := repository.NewEnrollmentRepository(db, log)

	// A typed nil must not reach the interface value, so the locker is only
	// assigned when the lock actually exists.
	var locker assignmentUsecases.ExecutionLocker
	lockTTL := time.Duration(cfg.Scheduler.RuleLockTTLSeconds) * time.Second
	if ruleLock := cache.NewRuleLock(redisClient, lockTTL, log); ruleLock != nil {
		locker = ruleLock
	}

	matcher := assignmentUsecases.NewMatcher(employeeRepo, log)
	executeRuleUC := assignmentUsecases.NewExecuteRuleUseCase(ruleRepo, enrollmentRepo, matcher, locker, log)
	scheduledRulesUC := assignmentUsecases.NewExecuteScheduledRulesUseCase(ruleRepo, executeRuleUC, log)
	immediateRulesUC := assignmentUsecases.NewExecuteImmediateRulesUseCase(ruleRepo, executeRuleUC, log)

	createRuleUC := assignmentUsecases.NewCreateRuleUseCase(ruleRepo, courseRepo, log)
	updateRuleUC := assignmentUsecases.NewUpdateRuleUseCase(ruleRepo, courseRepo, log)
	getRuleUC := assignmentUsecases.NewGetRuleUseCase(ruleRepo, log)
	listRulesUC := assignmentUsecases.NewListRulesUseCase(ruleRepo, log)
	deleteRuleUC := assignmentUsecases.NewDeleteRuleUseCase(ruleRepo, log)
	activateRuleUC := assignmentUsecases.NewActivateRuleUseCase(ruleRepo, log)
	deactivateRuleUC := assignmentUsecases.NewDeactivateRuleUseCase(ruleRepo, log)
	previewRuleUC := assignmentUsecases.NewPreviewRuleUseCase(ruleRepo, enrollmentRepo, matcher, log)

	createCourseUC := courseUsecases.NewCreateCourseUseCase(courseRepo, log)
	getCourseUC := courseUsecases.NewGetCourseUseCase(courseRepo, log)
	listCoursesUC := courseUsecases.NewListCoursesUseCase(courseRepo, log)
	publishCourseUC := courseUsecases.NewPublishCourseUseCase(courseRepo, immediateRulesUC, log)
	reexecuteRulesUC := courseUsecases.NewReexecuteCourseRulesUseCase(courseRepo, immediateRulesUC, log)

	createEmployeeUC := employeeUsecases.NewCreateEmployeeUseCase(
		employeeRepo, scheduledRulesUC, cfg.Scheduler.OnNewEmployee, log)
	getEmployeeUC := employeeUsecases.NewGetEmployeeUseCase(employeeRepo, log)
	listEmployeesUC := employeeUsecases.NewListEmployeesUseCase(employeeRepo, log)
	listEnrollmentsUC := enrollmentUsecases.NewListEmployeeEnrollmentsUseCase(enrollmentRepo, employeeRepo, log)

	return &Container{
		db:  db,
		cfg: cfg,
		log: log,
		ruleHandler: rulehandlers.NewRuleHandler(
			createRuleUC,
			updateRuleUC,
			getRuleUC,
			listRulesUC,
			deleteRuleUC,
			activateRuleUC,
			deactivateRuleUC,
			previewRuleUC,
			executeRuleUC,
		),
		courseHandler: coursehandlers.NewCourseHandler(
			createCourseUC,
			getCourseUC,
			listCoursesUC,
			publishCourseUC,
			reexecuteRulesUC,
		),
		employeeHandler: employeehandlers.NewEmployeeHandler(
			createEmployeeUC,
			getEmployeeUC,
			listEmployeesUC,
			listEnrollmentsUC,
		),
		scheduledRules: scheduledRulesUC,
	}
}

// ScheduledRules exposes the batch use case for the scheduler.
func (c *Container) ScheduledRules() *assignmentUsecases.ExecuteScheduledRulesUseCase {
	return c.scheduledRules
}
