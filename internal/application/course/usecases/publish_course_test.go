package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	assignmentusecases "academy/internal/application/assignment/usecases"
	"academy/internal/domain/assignment"
	vo "academy/internal/domain/assignment/valueobjects"
	"academy/internal/domain/course"
	"academy/internal/domain/employee"
	"academy/internal/domain/enrollment"
	"academy/internal/shared/errors"
)

func draftCourse(t *testing.T, id uint) *course.Course {
	t.Helper()
	c, err := course.Reconstruct(course.ReconstructParams{
		ID:        id,
		Title:     "Security Awareness",
		Status:    course.StatusDraft,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
	require.NoError(t, err)
	return c
}

func courseRule(t *testing.T, id, courseID uint, frequency vo.ExecutionFrequency) *assignment.Rule {
	t.Helper()
	c, err := assignment.NewCriterion("department", vo.OperatorEquals, "Engineering", 0)
	require.NoError(t, err)
	rule, err := assignment.ReconstructRule(assignment.RuleReconstructParams{
		ID:             id,
		Name:           fmt.Sprintf("rule-%d", id),
		CourseID:       courseID,
		Status:         vo.RuleStatusActive,
		Enabled:        true,
		EnrollmentType: enrollment.TypeMandatory,
		Frequency:      frequency,
		MatchLogic:     vo.MatchLogicAnd,
		Criteria:       []assignment.Criterion{c},
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	})
	require.NoError(t, err)
	return rule
}

func engineeringDirectory(t *testing.T) *mockDirectory {
	t.Helper()
	joined, _ := time.Parse(employee.DateLayout, "2024-01-15")
	emp, err := employee.Reconstruct(employee.ReconstructParams{
		ID:            1,
		EmployeeID:    "EMP-0001",
		FirstName:     "Asha",
		LastName:      "Verma",
		Email:         "asha.verma@example.com",
		Department:    "Engineering",
		DateOfJoining: joined,
		Status:        employee.StatusActive,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	})
	require.NoError(t, err)
	return &mockDirectory{
		ListActiveFunc: func(ctx context.Context) ([]*employee.Employee, error) {
			return []*employee.Employee{emp}, nil
		},
	}
}

func newImmediateRulesUseCase(ruleRepo *mockRuleRepository, enrollmentRepo *mockEnrollmentRepository, directory *mockDirectory) *assignmentusecases.ExecuteImmediateRulesUseCase {
	log := &mockLogger{}
	executor := assignmentusecases.NewExecuteRuleUseCase(ruleRepo, enrollmentRepo, assignmentusecases.NewMatcher(directory, log), nil, log)
	return assignmentusecases.NewExecuteImmediateRulesUseCase(ruleRepo, executor, log)
}

func TestPublishCourse_RunsImmediateRules(t *testing.T) {
	c := draftCourse(t, 100)

	var updated *course.Course
	courseRepo := &mockCourseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*course.Course, error) {
			return c, nil
		},
		UpdateFunc: func(ctx context.Context, saved *course.Course) error {
			updated = saved
			return nil
		},
	}
	ruleRepo := &mockRuleRepository{
		ListByCourseFunc: func(ctx context.Context, courseID uint) ([]*assignment.Rule, error) {
			return []*assignment.Rule{courseRule(t, 1, courseID, vo.FrequencyImmediate)}, nil
		},
	}
	created := 0
	enrollmentRepo := &mockEnrollmentRepository{
		CreateFunc: func(ctx context.Context, enr *enrollment.Enrollment) error {
			created++
			return nil
		},
	}

	uc := NewPublishCourseUseCase(courseRepo, newImmediateRulesUseCase(ruleRepo, enrollmentRepo, engineeringDirectory(t)), &mockLogger{})
	result, err := uc.Execute(context.Background(), 100)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "PUBLISHED", result.Course.Status)
	require.NotNil(t, result.ImmediateRules)
	assert.Equal(t, 1, result.ImmediateRules.Total)
	assert.Equal(t, 1, created)
}

func TestPublishCourse_ArchivedCourseRejected(t *testing.T) {
	c := draftCourse(t, 100)
	c.Archive()

	courseRepo := &mockCourseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*course.Course, error) {
			return c, nil
		},
	}

	uc := NewPublishCourseUseCase(courseRepo, newImmediateRulesUseCase(&mockRuleRepository{}, &mockEnrollmentRepository{}, &mockDirectory{}), &mockLogger{})
	_, err := uc.Execute(context.Background(), 100)

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestReexecuteCourseRules_RequiresPublishedCourse(t *testing.T) {
	c := draftCourse(t, 100)

	courseRepo := &mockCourseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*course.Course, error) {
			return c, nil
		},
	}
	ruleRepo := &mockRuleRepository{
		ListByCourseFunc: func(ctx context.Context, courseID uint) ([]*assignment.Rule, error) {
			t.Error("unpublished course must not execute rules")
			return nil, nil
		},
	}

	uc := NewReexecuteCourseRulesUseCase(courseRepo, newImmediateRulesUseCase(ruleRepo, &mockEnrollmentRepository{}, &mockDirectory{}), &mockLogger{})

	_, err := uc.Execute(context.Background(), 100)

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestReexecuteCourseRules_RunsOnlyImmediateRules(t *testing.T) {
	c := draftCourse(t, 100)
	require.NoError(t, c.Publish())

	courseRepo := &mockCourseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*course.Course, error) {
			return c, nil
		},
	}

	active := courseRule(t, 1, 100, vo.FrequencyImmediate)
	inactive := courseRule(t, 2, 100, vo.FrequencyImmediate)
	inactive.Deactivate()
	nightly := courseRule(t, 3, 100, vo.FrequencyDaily)
	ruleRepo := &mockRuleRepository{
		ListByCourseFunc: func(ctx context.Context, courseID uint) ([]*assignment.Rule, error) {
			return []*assignment.Rule{active, inactive, nightly}, nil
		},
	}
	created := 0
	enrollmentRepo := &mockEnrollmentRepository{
		CreateFunc: func(ctx context.Context, enr *enrollment.Enrollment) error {
			created++
			return nil
		},
	}

	uc := NewReexecuteCourseRulesUseCase(courseRepo, newImmediateRulesUseCase(ruleRepo, enrollmentRepo, engineeringDirectory(t)), &mockLogger{})

	batch, err := uc.Execute(context.Background(), 100)

	require.NoError(t, err)
	assert.Equal(t, 1, batch.Total)
	assert.Equal(t, 1, batch.SuccessCount)
	assert.Equal(t, 1, created)
}
