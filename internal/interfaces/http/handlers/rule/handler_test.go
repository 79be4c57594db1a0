package rule

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/internal/application/assignment/usecases"
	"academy/internal/domain/assignment"
	vo "academy/internal/domain/assignment/valueobjects"
	"academy/internal/domain/course"
	"academy/internal/domain/employee"
	"academy/internal/domain/enrollment"
	"academy/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// =====================================================================
// In-memory stores
// =====================================================================

type stubRuleRepo struct {
	rules  map[uint]*assignment.Rule
	nextID uint
}

func newStubRuleRepo() *stubRuleRepo {
	return &stubRuleRepo{rules: make(map[uint]*assignment.Rule)}
}

func (s *stubRuleRepo) Create(_ context.Context, rule *assignment.Rule) error {
	s.nextID++
	if err := rule.SetID(s.nextID); err != nil {
		return err
	}
	s.rules[rule.ID()] = rule
	return nil
}

func (s *stubRuleRepo) GetByID(_ context.Context, id uint) (*assignment.Rule, error) {
	return s.rules[id], nil
}

func (s *stubRuleRepo) List(_ context.Context, _, _ int) ([]*assignment.Rule, int64, error) {
	var out []*assignment.Rule
	for _, r := range s.rules {
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (s *stubRuleRepo) ListByCourse(_ context.Context, courseID uint) ([]*assignment.Rule, error) {
	var out []*assignment.Rule
	for _, r := range s.rules {
		if r.CourseID() == courseID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubRuleRepo) ListActive(_ context.Context) ([]*assignment.Rule, error) {
	var out []*assignment.Rule
	for _, r := range s.rules {
		if r.Status().IsActive() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubRuleRepo) ListExecutable(_ context.Context, frequency vo.ExecutionFrequency) ([]*assignment.Rule, error) {
	var out []*assignment.Rule
	for _, r := range s.rules {
		if r.IsExecutable() && r.Frequency() == frequency {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubRuleRepo) Update(_ context.Context, rule *assignment.Rule) error {
	s.rules[rule.ID()] = rule
	return nil
}

func (s *stubRuleRepo) UpdateExecutionInfo(_ context.Context, rule *assignment.Rule) error {
	s.rules[rule.ID()] = rule
	return nil
}

func (s *stubRuleRepo) Delete(_ context.Context, id uint) error {
	delete(s.rules, id)
	return nil
}

type stubCourseRepo struct {
	courses map[uint]*course.Course
}

func (s *stubCourseRepo) Create(_ context.Context, c *course.Course) error {
	s.courses[c.ID()] = c
	return nil
}

func (s *stubCourseRepo) GetByID(_ context.Context, id uint) (*course.Course, error) {
	return s.courses[id], nil
}

func (s *stubCourseRepo) List(_ context.Context, _, _ int) ([]*course.Course, int64, error) {
	return nil, 0, nil
}

func (s *stubCourseRepo) Update(_ context.Context, c *course.Course) error {
	s.courses[c.ID()] = c
	return nil
}

func (s *stubCourseRepo) Delete(_ context.Context, id uint) error {
	delete(s.courses, id)
	return nil
}

type stubEnrollmentRepo struct {
	created []*enrollment.Enrollment
}

func (s *stubEnrollmentRepo) Create(_ context.Context, enr *enrollment.Enrollment) error {
	s.created = append(s.created, enr)
	return nil
}

func (s *stubEnrollmentRepo) Exists(_ context.Context, _, _ uint) (bool, error) {
	return false, nil
}

func (s *stubEnrollmentRepo) GetByID(_ context.Context, _ uint) (*enrollment.Enrollment, error) {
	return nil, nil
}

func (s *stubEnrollmentRepo) ListByEmployee(_ context.Context, _ uint) ([]*enrollment.Enrollment, error) {
	return nil, nil
}

func (s *stubEnrollmentRepo) ListByCourse(_ context.Context, _ uint) ([]*enrollment.Enrollment, error) {
	return nil, nil
}

type stubDirectory struct {
	employees []*employee.Employee
}

func (s *stubDirectory) ListActive(_ context.Context) ([]*employee.Employee, error) {
	return s.employees, nil
}

// =====================================================================
// Test helpers
// =====================================================================

func directoryEmployee(t *testing.T, id uint, department string) *employee.Employee {
	t.Helper()
	joined, _ := time.Parse(employee.DateLayout, "2024-03-01")
	emp, err := employee.Reconstruct(employee.ReconstructParams{
		ID:            id,
		EmployeeID:    fmt.Sprintf("EMP-%04d", id),
		FirstName:     "Test",
		LastName:      fmt.Sprintf("Employee%d", id),
		Email:         fmt.Sprintf("employee%d@example.com", id),
		Department:    department,
		Designation:   "Engineer",
		DateOfJoining: joined,
		Status:        employee.StatusActive,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	})
	require.NoError(t, err)
	return emp
}

func publishedCourse(t *testing.T, id uint) *course.Course {
	t.Helper()
	c, err := course.NewCourse("Security Awareness", "Annual training", "Compliance", nil, "hr.admin")
	require.NoError(t, err)
	require.NoError(t, c.SetID(id))
	require.NoError(t, c.Publish())
	return c
}

func departmentRule(t *testing.T, repo *stubRuleRepo, courseID uint, department string) *assignment.Rule {
	t.Helper()
	criterion, err := assignment.NewCriterion("department", vo.OperatorEquals, department, 0)
	require.NoError(t, err)
	r, err := assignment.NewRule(
		department+" onboarding", "", courseID,
		enrollment.TypeMandatory, nil,
		vo.FrequencyDaily, vo.MatchLogicAnd,
		[]assignment.Criterion{criterion}, "hr.admin",
	)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), r))
	return r
}

type testEnv struct {
	engine         *gin.Engine
	ruleRepo       *stubRuleRepo
	courseRepo     *stubCourseRepo
	enrollmentRepo *stubEnrollmentRepo
	directory      *stubDirectory
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		ruleRepo:       newStubRuleRepo(),
		courseRepo:     &stubCourseRepo{courses: map[uint]*course.Course{100: publishedCourse(t, 100)}},
		enrollmentRepo: &stubEnrollmentRepo{},
		directory:      &stubDirectory{},
	}

	log := logger.NewLogger()
	matcher := usecases.NewMatcher(env.directory, log)
	executeRuleUC := usecases.NewExecuteRuleUseCase(env.ruleRepo, env.enrollmentRepo, matcher, nil, log)

	handler := NewRuleHandler(
		usecases.NewCreateRuleUseCase(env.ruleRepo, env.courseRepo, log),
		usecases.NewUpdateRuleUseCase(env.ruleRepo, env.courseRepo, log),
		usecases.NewGetRuleUseCase(env.ruleRepo, log),
		usecases.NewListRulesUseCase(env.ruleRepo, log),
		usecases.NewDeleteRuleUseCase(env.ruleRepo, log),
		usecases.NewActivateRuleUseCase(env.ruleRepo, log),
		usecases.NewDeactivateRuleUseCase(env.ruleRepo, log),
		usecases.NewPreviewRuleUseCase(env.ruleRepo, env.enrollmentRepo, matcher, log),
		executeRuleUC,
	)

	engine := gin.New()
	rules := engine.Group("/rules")
	rules.POST("", handler.CreateRule)
	rules.GET("", handler.ListRules)
	rules.GET("/active", handler.ListActiveRules)
	rules.POST("/preview", handler.PreviewDraftRule)
	rules.POST("/:id/activate", handler.ActivateRule)
	rules.POST("/:id/deactivate", handler.DeactivateRule)
	rules.GET("/:id/preview", handler.PreviewRule)
	rules.POST("/:id/execute", handler.ExecuteRule)
	rules.GET("/:id", handler.GetRule)
	rules.PUT("/:id", handler.UpdateRule)
	rules.DELETE("/:id", handler.DeleteRule)

	env.engine = engine
	return env
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var envelope apiEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope
}

// =====================================================================
// Tests
// =====================================================================

func TestCreateRule_Success(t *testing.T) {
	env := newTestEnv(t)

	recorder := doJSON(t, env.engine, http.MethodPost, "/rules", CreateRuleRequest{
		Name:           "Engineering onboarding",
		CourseID:       100,
		EnrollmentType: "MANDATORY",
		Frequency:      "DAILY",
		Criteria: []CriterionRequest{
			{FieldName: "department", Operator: "EQUALS", FieldValue: "Engineering"},
		},
		CreatedBy: "hr.admin",
	})

	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	envelope := decodeEnvelope(t, recorder)
	assert.True(t, envelope.Success)

	var data struct {
		ID     uint   `json:"id"`
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.NotZero(t, data.ID)
	assert.Equal(t, "Engineering onboarding", data.Name)
	assert.Equal(t, "ACTIVE", data.Status)
}

func TestCreateRule_UnknownOperatorRejected(t *testing.T) {
	env := newTestEnv(t)

	recorder := doJSON(t, env.engine, http.MethodPost, "/rules", CreateRuleRequest{
		Name:           "Bad rule",
		CourseID:       100,
		EnrollmentType: "MANDATORY",
		Frequency:      "DAILY",
		Criteria: []CriterionRequest{
			{FieldName: "department", Operator: "LIKE", FieldValue: "Engineering"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code, recorder.Body.String())
	assert.Empty(t, env.ruleRepo.rules)
}

func TestCreateRule_MissingCriteriaRejected(t *testing.T) {
	env := newTestEnv(t)

	recorder := doJSON(t, env.engine, http.MethodPost, "/rules", CreateRuleRequest{
		Name:           "No criteria",
		CourseID:       100,
		EnrollmentType: "MANDATORY",
		Frequency:      "DAILY",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetRule_NotFound(t *testing.T) {
	env := newTestEnv(t)

	recorder := doJSON(t, env.engine, http.MethodGet, "/rules/42", nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetRule_InvalidID(t *testing.T) {
	env := newTestEnv(t)

	recorder := doJSON(t, env.engine, http.MethodGet, "/rules/abc", nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPreviewRule_ReportsCandidatesWithoutWriting(t *testing.T) {
	env := newTestEnv(t)
	rule := departmentRule(t, env.ruleRepo, 100, "Engineering")
	env.directory.employees = []*employee.Employee{
		directoryEmployee(t, 1, "Engineering"),
		directoryEmployee(t, 2, "Sales"),
	}

	recorder := doJSON(t, env.engine, http.MethodGet, fmt.Sprintf("/rules/%d/preview", rule.ID()), nil)

	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	envelope := decodeEnvelope(t, recorder)

	var data struct {
		TotalMatched    int `json:"total_matched"`
		AlreadyEnrolled int `json:"already_enrolled"`
		WillBeEnrolled  int `json:"will_be_enrolled"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Equal(t, 1, data.TotalMatched)
	assert.Equal(t, 0, data.AlreadyEnrolled)
	assert.Equal(t, 1, data.WillBeEnrolled)
	assert.Empty(t, env.enrollmentRepo.created)
}

func TestExecuteRule_EnrollsMatchedEmployees(t *testing.T) {
	env := newTestEnv(t)
	rule := departmentRule(t, env.ruleRepo, 100, "Engineering")
	env.directory.employees = []*employee.Employee{
		directoryEmployee(t, 1, "Engineering"),
		directoryEmployee(t, 2, "Engineering"),
		directoryEmployee(t, 3, "Sales"),
	}

	recorder := doJSON(t, env.engine, http.MethodPost, fmt.Sprintf("/rules/%d/execute", rule.ID()), nil)

	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	envelope := decodeEnvelope(t, recorder)

	var data struct {
		Success      bool `json:"success"`
		TotalMatched int  `json:"total_matched"`
		Created      int  `json:"created"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.True(t, data.Success)
	assert.Equal(t, 2, data.TotalMatched)
	assert.Equal(t, 2, data.Created)
	assert.Len(t, env.enrollmentRepo.created, 2)
}

func TestExecuteRule_InactiveRuleReportsNotActive(t *testing.T) {
	env := newTestEnv(t)
	rule := departmentRule(t, env.ruleRepo, 100, "Engineering")
	rule.Deactivate()
	require.NoError(t, env.ruleRepo.Update(context.Background(), rule))

	recorder := doJSON(t, env.engine, http.MethodPost, fmt.Sprintf("/rules/%d/execute", rule.ID()), nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	envelope := decodeEnvelope(t, recorder)

	var data struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.False(t, data.Success)
	assert.Equal(t, usecases.RuleNotActiveMessage, data.Message)
	assert.Empty(t, env.enrollmentRepo.created)
}

func TestDeactivateThenActivateRule(t *testing.T) {
	env := newTestEnv(t)
	rule := departmentRule(t, env.ruleRepo, 100, "Engineering")

	recorder := doJSON(t, env.engine, http.MethodPost, fmt.Sprintf("/rules/%d/deactivate", rule.ID()), nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.False(t, env.ruleRepo.rules[rule.ID()].IsExecutable())

	recorder = doJSON(t, env.engine, http.MethodPost, fmt.Sprintf("/rules/%d/activate", rule.ID()), nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, env.ruleRepo.rules[rule.ID()].IsExecutable())
}

func TestDeleteRule_RemovesRule(t *testing.T) {
	env := newTestEnv(t)
	rule := departmentRule(t, env.ruleRepo, 100, "Engineering")

	recorder := doJSON(t, env.engine, http.MethodDelete, fmt.Sprintf("/rules/%d", rule.ID()), nil)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, env.ruleRepo.rules)
}

func TestPreviewDraftRule_NothingSaved(t *testing.T) {
	env := newTestEnv(t)
	env.directory.employees = []*employee.Employee{
		directoryEmployee(t, 1, "Engineering"),
		directoryEmployee(t, 2, "Sales"),
	}

	recorder := doJSON(t, env.engine, http.MethodPost, "/rules/preview", PreviewRuleRequest{
		Name:           "Draft onboarding",
		CourseID:       100,
		EnrollmentType: "MANDATORY",
		Frequency:      "DAILY",
		Criteria: []CriterionRequest{
			{FieldName: "department", Operator: "EQUALS", FieldValue: "Engineering"},
		},
	})

	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	envelope := decodeEnvelope(t, recorder)

	var data struct {
		TotalMatched   int `json:"total_matched"`
		WillBeEnrolled int `json:"will_be_enrolled"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Equal(t, 1, data.TotalMatched)
	assert.Equal(t, 1, data.WillBeEnrolled)
	assert.Empty(t, env.ruleRepo.rules)
	assert.Empty(t, env.enrollmentRepo.created)
}

func TestListActiveRules_ExcludesDeactivated(t *testing.T) {
	env := newTestEnv(t)
	departmentRule(t, env.ruleRepo, 100, "Engineering")
	dormant := departmentRule(t, env.ruleRepo, 100, "Sales")
	dormant.Deactivate()
	require.NoError(t, env.ruleRepo.Update(context.Background(), dormant))

	recorder := doJSON(t, env.engine, http.MethodGet, "/rules/active", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	envelope := decodeEnvelope(t, recorder)

	var data struct {
		Items []struct {
			Name string `json:"name"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	require.Len(t, data.Items, 1)
	assert.Equal(t, "Engineering onboarding", data.Items[0].Name)
}

func TestListRules_PaginationEnvelope(t *testing.T) {
	env := newTestEnv(t)
	departmentRule(t, env.ruleRepo, 100, "Engineering")
	departmentRule(t, env.ruleRepo, 100, "Sales")

	recorder := doJSON(t, env.engine, http.MethodGet, "/rules?page=1&page_size=10", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	envelope := decodeEnvelope(t, recorder)

	var data struct {
		Items []json.RawMessage `json:"items"`
		Total int64             `json:"total"`
		Page  int               `json:"page"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Len(t, data.Items, 2)
	assert.Equal(t, int64(2), data.Total)
	assert.Equal(t, 1, data.Page)
}
