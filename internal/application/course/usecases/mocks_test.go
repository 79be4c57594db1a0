package usecases

import (
	"context"

	"academy/internal/domain/assignment"
	vo "academy/internal/domain/assignment/valueobjects"
	"academy/internal/domain/course"
	"academy/internal/domain/employee"
	"academy/internal/domain/enrollment"
	"academy/internal/shared/logger"
)

type mockCourseRepository struct {
	CreateFunc  func(ctx context.Context, c *course.Course) error
	GetByIDFunc func(ctx context.Context, id uint) (*course.Course, error)
	ListFunc    func(ctx context.Context, page, pageSize int) ([]*course.Course, int64, error)
	UpdateFunc  func(ctx context.Context, c *course.Course) error
	DeleteFunc  func(ctx context.Context, id uint) error
}

func (m *mockCourseRepository) Create(ctx context.Context, c *course.Course) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCourseRepository) GetByID(ctx context.Context, id uint) (*course.Course, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCourseRepository) List(ctx context.Context, page, pageSize int) ([]*course.Course, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockCourseRepository) Update(ctx context.Context, c *course.Course) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCourseRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockRuleRepository struct {
	ListByCourseFunc func(ctx context.Context, courseID uint) ([]*assignment.Rule, error)
}

func (m *mockRuleRepository) Create(ctx context.Context, rule *assignment.Rule) error { return nil }
func (m *mockRuleRepository) GetByID(ctx context.Context, id uint) (*assignment.Rule, error) {
	return nil, nil
}
func (m *mockRuleRepository) List(ctx context.Context, page, pageSize int) ([]*assignment.Rule, int64, error) {
	return nil, 0, nil
}

func (m *mockRuleRepository) ListByCourse(ctx context.Context, courseID uint) ([]*assignment.Rule, error) {
	if m.ListByCourseFunc != nil {
		return m.ListByCourseFunc(ctx, courseID)
	}
	return nil, nil
}

func (m *mockRuleRepository) ListActive(ctx context.Context) ([]*assignment.Rule, error) {
	return nil, nil
}

func (m *mockRuleRepository) ListExecutable(ctx context.Context, frequency vo.ExecutionFrequency) ([]*assignment.Rule, error) {
	return nil, nil
}

func (m *mockRuleRepository) Update(ctx context.Context, rule *assignment.Rule) error { return nil }
func (m *mockRuleRepository) UpdateExecutionInfo(ctx context.Context, rule *assignment.Rule) error {
	return nil
}
func (m *mockRuleRepository) Delete(ctx context.Context, id uint) error { return nil }

type mockEnrollmentRepository struct {
	CreateFunc func(ctx context.Context, enr *enrollment.Enrollment) error
}

func (m *mockEnrollmentRepository) Create(ctx context.Context, enr *enrollment.Enrollment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, enr)
	}
	return nil
}

func (m *mockEnrollmentRepository) Exists(ctx context.Context, employeeID, courseID uint) (bool, error) {
	return false, nil
}

func (m *mockEnrollmentRepository) GetByID(ctx context.Context, id uint) (*enrollment.Enrollment, error) {
	return nil, nil
}

func (m *mockEnrollmentRepository) ListByEmployee(ctx context.Context, employeeID uint) ([]*enrollment.Enrollment, error) {
	return nil, nil
}

func (m *mockEnrollmentRepository) ListByCourse(ctx context.Context, courseID uint) ([]*enrollment.Enrollment, error) {
	return nil, nil
}

type mockDirectory struct {
	ListActiveFunc func(ctx context.Context) ([]*employee.Employee, error)
}

func (m *mockDirectory) ListActive(ctx context.Context) ([]*employee.Employee, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
