package rule

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"academy/internal/application/assignment/usecases"
	"academy/internal/shared/constants"
	"academy/internal/shared/errors"
)

type CriterionRequest struct {
	FieldName  string `json:"field_name" binding:"required,max=100"`
	Operator   string `json:"operator" binding:"required,max=20"`
	FieldValue string `json:"field_value"`
}

type CreateRuleRequest struct {
	Name           string             `json:"name" binding:"required,max=255"`
	Description    string             `json:"description" binding:"max=5000"`
	CourseID       uint               `json:"course_id" binding:"required"`
	EnrollmentType string             `json:"enrollment_type" binding:"required"`
	DueDays        *int               `json:"due_days,omitempty"`
	Frequency      string             `json:"frequency" binding:"required"`
	MatchLogic     string             `json:"match_logic"`
	Criteria       []CriterionRequest `json:"criteria" binding:"required,min=1,dive"`
	CreatedBy      string             `json:"created_by" binding:"max=100"`
}

func (r *CreateRuleRequest) ToCommand() usecases.CreateRuleCommand {
	return usecases.CreateRuleCommand{
		Name:           r.Name,
		Description:    r.Description,
		CourseID:       r.CourseID,
		EnrollmentType: r.EnrollmentType,
		DueDays:        r.DueDays,
		Frequency:      r.Frequency,
		MatchLogic:     r.MatchLogic,
		Criteria:       toCriterionInputs(r.Criteria),
		CreatedBy:      r.CreatedBy,
	}
}

type UpdateRuleRequest struct {
	Name           string             `json:"name" binding:"required,max=255"`
	Description    string             `json:"description" binding:"max=5000"`
	CourseID       uint               `json:"course_id" binding:"required"`
	EnrollmentType string             `json:"enrollment_type" binding:"required"`
	DueDays        *int               `json:"due_days,omitempty"`
	Frequency      string             `json:"frequency" binding:"required"`
	MatchLogic     string             `json:"match_logic"`
	Criteria       []CriterionRequest `json:"criteria" binding:"required,min=1,dive"`
}

func (r *UpdateRuleRequest) ToCommand(ruleID uint) usecases.UpdateRuleCommand {
	return usecases.UpdateRuleCommand{
		RuleID:         ruleID,
		Name:           r.Name,
		Description:    r.Description,
		CourseID:       r.CourseID,
		EnrollmentType: r.EnrollmentType,
		DueDays:        r.DueDays,
		Frequency:      r.Frequency,
		MatchLogic:     r.MatchLogic,
		Criteria:       toCriterionInputs(r.Criteria),
	}
}

func toCriterionInputs(reqs []CriterionRequest) []usecases.CriterionInput {
	inputs := make([]usecases.CriterionInput, 0, len(reqs))
	for _, req := range reqs {
		inputs = append(inputs, usecases.CriterionInput{
			FieldName:  req.FieldName,
			Operator:   req.Operator,
			FieldValue: req.FieldValue,
		})
	}
	return inputs
}

// PreviewRuleRequest is a draft rule definition for a dry run; nothing is
// saved.
type PreviewRuleRequest struct {
	Name           string             `json:"name" binding:"required,max=255"`
	Description    string             `json:"description" binding:"max=5000"`
	CourseID       uint               `json:"course_id" binding:"required"`
	EnrollmentType string             `json:"enrollment_type" binding:"required"`
	DueDays        *int               `json:"due_days,omitempty"`
	Frequency      string             `json:"frequency" binding:"required"`
	MatchLogic     string             `json:"match_logic"`
	Criteria       []CriterionRequest `json:"criteria" binding:"required,min=1,dive"`
}

func (r *PreviewRuleRequest) ToCommand() usecases.PreviewDraftCommand {
	return usecases.PreviewDraftCommand{
		Name:           r.Name,
		Description:    r.Description,
		CourseID:       r.CourseID,
		EnrollmentType: r.EnrollmentType,
		DueDays:        r.DueDays,
		Frequency:      r.Frequency,
		MatchLogic:     r.MatchLogic,
		Criteria:       toCriterionInputs(r.Criteria),
	}
}

type ListRulesRequest struct {
	Page       int
	PageSize   int
	CourseID   uint
	ActiveOnly bool
}

func (r *ListRulesRequest) ToQuery() usecases.ListRulesQuery {
	return usecases.ListRulesQuery{
		Page:       r.Page,
		PageSize:   r.PageSize,
		CourseID:   r.CourseID,
		ActiveOnly: r.ActiveOnly,
	}
}

func parseListRulesRequest(c *gin.Context) (*ListRulesRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = constants.DefaultPage
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	req := &ListRulesRequest{
		Page:     page,
		PageSize: pageSize,
	}

	if courseIDStr := c.Query("course_id"); courseIDStr != "" {
		courseID, err := strconv.ParseUint(courseIDStr, 10, 32)
		if err != nil || courseID == 0 {
			return nil, errors.NewValidationError("invalid course_id")
		}
		req.CourseID = uint(courseID)
	}

	if activeStr := c.Query("active"); activeStr != "" {
		active, err := strconv.ParseBool(activeStr)
		if err != nil {
			return nil, errors.NewValidationError("invalid active flag")
		}
		req.ActiveOnly = active
	}

	return req, nil
}
