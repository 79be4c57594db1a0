package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/internal/domain/assignment"
	"academy/internal/domain/course"
	"academy/internal/shared/errors"
)

func testCourse(t *testing.T, id uint) *course.Course {
	t.Helper()
	c, err := course.Reconstruct(course.ReconstructParams{
		ID:        id,
		Title:     "Security Awareness",
		Status:    course.StatusPublished,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
	require.NoError(t, err)
	return c
}

func validCreateRuleCommand() CreateRuleCommand {
	return CreateRuleCommand{
		Name:           "Engineering onboarding",
		Description:    "Auto-assign onboarding training",
		CourseID:       100,
		EnrollmentType: "MANDATORY",
		Frequency:      "DAILY",
		MatchLogic:     "AND",
		Criteria: []CriterionInput{
			{FieldName: "department", Operator: "EQUALS", FieldValue: "Engineering"},
		},
		CreatedBy: "admin",
	}
}

func TestCreateRule_Success(t *testing.T) {
	var saved *assignment.Rule
	ruleRepo := &mockRuleRepository{
		CreateFunc: func(ctx context.Context, rule *assignment.Rule) error {
			saved = rule
			return rule.SetID(7)
		},
	}
	courseRepo := &mockCourseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*course.Course, error) {
			return testCourse(t, id), nil
		},
	}

	uc := NewCreateRuleUseCase(ruleRepo, courseRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), validCreateRuleCommand())

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, uint(7), result.ID)
	assert.Equal(t, "ACTIVE", result.Status)
	assert.True(t, result.Enabled)
	require.Len(t, result.Criteria, 1)
	assert.Equal(t, "department", result.Criteria[0].FieldName)
}

func TestCreateRule_SanitizesDescription(t *testing.T) {
	ruleRepo := &mockRuleRepository{
		CreateFunc: func(ctx context.Context, rule *assignment.Rule) error {
			return rule.SetID(7)
		},
	}
	courseRepo := &mockCourseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*course.Course, error) {
			return testCourse(t, id), nil
		},
	}

	cmd := validCreateRuleCommand()
	cmd.Description = `<script>alert("x")</script>plain text`

	uc := NewCreateRuleUseCase(ruleRepo, courseRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), cmd)

	require.NoError(t, err)
	assert.NotContains(t, result.Description, "<script>")
	assert.Contains(t, result.Description, "plain text")
}

func TestCreateRule_CourseNotFound(t *testing.T) {
	courseRepo := &mockCourseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*course.Course, error) {
			return nil, nil
		},
	}

	uc := NewCreateRuleUseCase(&mockRuleRepository{}, courseRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), validCreateRuleCommand())

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestCreateRule_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateRuleCommand)
	}{
		{"no criteria", func(cmd *CreateRuleCommand) { cmd.Criteria = nil }},
		{"bad operator", func(cmd *CreateRuleCommand) { cmd.Criteria[0].Operator = "LIKE" }},
		{"blank field name", func(cmd *CreateRuleCommand) { cmd.Criteria[0].FieldName = "  " }},
		{"bad enrollment type", func(cmd *CreateRuleCommand) { cmd.EnrollmentType = "VOLUNTARY" }},
		{"bad frequency", func(cmd *CreateRuleCommand) { cmd.Frequency = "HOURLY" }},
	}

	courseRepo := &mockCourseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*course.Course, error) {
			return testCourse(t, id), nil
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCreateRuleCommand()
			tt.mutate(&cmd)

			uc := NewCreateRuleUseCase(&mockRuleRepository{}, courseRepo, &mockLogger{})
			_, err := uc.Execute(context.Background(), cmd)

			require.Error(t, err)
			assert.True(t, errors.IsValidation(err))
		})
	}
}

func TestCreateRule_UnparsedMatchLogicFallsBackToAnd(t *testing.T) {
	ruleRepo := &mockRuleRepository{
		CreateFunc: func(ctx context.Context, rule *assignment.Rule) error {
			return rule.SetID(7)
		},
	}
	courseRepo := &mockCourseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*course.Course, error) {
			return testCourse(t, id), nil
		},
	}

	cmd := validCreateRuleCommand()
	cmd.MatchLogic = "XOR"

	uc := NewCreateRuleUseCase(ruleRepo, courseRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, "AND", result.MatchLogic)
}
