package rule

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academy/internal/application/assignment/usecases"
	"academy/internal/shared/logger"
	"academy/internal/shared/utils"
)

type RuleHandler struct {
	createRuleUC     *usecases.CreateRuleUseCase
	updateRuleUC     *usecases.UpdateRuleUseCase
	getRuleUC        *usecases.GetRuleUseCase
	listRulesUC      *usecases.ListRulesUseCase
	deleteRuleUC     *usecases.DeleteRuleUseCase
	activateRuleUC   *usecases.ActivateRuleUseCase
	deactivateRuleUC *usecases.DeactivateRuleUseCase
	previewRuleUC    *usecases.PreviewRuleUseCase
	executeRuleUC    *usecases.ExecuteRuleUseCase
	logger           logger.Interface
}

func NewRuleHandler(
	createRuleUC *usecases.CreateRuleUseCase,
	updateRuleUC *usecases.UpdateRuleUseCase,
	getRuleUC *usecases.GetRuleUseCase,
	listRulesUC *usecases.ListRulesUseCase,
	deleteRuleUC *usecases.DeleteRuleUseCase,
	activateRuleUC *usecases.ActivateRuleUseCase,
	deactivateRuleUC *usecases.DeactivateRuleUseCase,
	previewRuleUC *usecases.PreviewRuleUseCase,
	executeRuleUC *usecases.ExecuteRuleUseCase,
) *RuleHandler {
	return &RuleHandler{
		createRuleUC:     createRuleUC,
		updateRuleUC:     updateRuleUC,
		getRuleUC:        getRuleUC,
		listRulesUC:      listRulesUC,
		deleteRuleUC:     deleteRuleUC,
		activateRuleUC:   activateRuleUC,
		deactivateRuleUC: deactivateRuleUC,
		previewRuleUC:    previewRuleUC,
		executeRuleUC:    executeRuleUC,
		logger:           logger.NewLogger(),
	}
}

// CreateRule handles POST /rules
func (h *RuleHandler) CreateRule(c *gin.Context) {
	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create rule", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createRuleUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Rule created successfully")
}

// UpdateRule handles PUT /rules/:id
func (h *RuleHandler) UpdateRule(c *gin.Context) {
	ruleID, err := utils.ParseUintParam(c, "id", "rule")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update rule", "rule_id", ruleID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateRuleUC.Execute(c.Request.Context(), req.ToCommand(ruleID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Rule updated successfully", result)
}

// GetRule handles GET /rules/:id
func (h *RuleHandler) GetRule(c *gin.Context) {
	ruleID, err := utils.ParseUintParam(c, "id", "rule")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getRuleUC.Execute(c.Request.Context(), ruleID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListRules handles GET /rules
func (h *RuleHandler) ListRules(c *gin.Context) {
	req, err := parseListRulesRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listRulesUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Rules, result.Total, result.Page, result.PageSize)
}

// ListActiveRules handles GET /rules/active
func (h *RuleHandler) ListActiveRules(c *gin.Context) {
	result, err := h.listRulesUC.Execute(c.Request.Context(), usecases.ListRulesQuery{ActiveOnly: true})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Rules, result.Total, result.Page, result.PageSize)
}

// DeleteRule handles DELETE /rules/:id
func (h *RuleHandler) DeleteRule(c *gin.Context) {
	ruleID, err := utils.ParseUintParam(c, "id", "rule")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteRuleUC.Execute(c.Request.Context(), ruleID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ActivateRule handles POST /rules/:id/activate
func (h *RuleHandler) ActivateRule(c *gin.Context) {
	ruleID, err := utils.ParseUintParam(c, "id", "rule")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.activateRuleUC.Execute(c.Request.Context(), ruleID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Rule activated successfully", result)
}

// DeactivateRule handles POST /rules/:id/deactivate
func (h *RuleHandler) DeactivateRule(c *gin.Context) {
	ruleID, err := utils.ParseUintParam(c, "id", "rule")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deactivateRuleUC.Execute(c.Request.Context(), ruleID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Rule deactivated successfully", result)
}

// PreviewRule handles GET /rules/:id/preview
func (h *RuleHandler) PreviewRule(c *gin.Context) {
	ruleID, err := utils.ParseUintParam(c, "id", "rule")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.previewRuleUC.Execute(c.Request.Context(), ruleID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// PreviewDraftRule handles POST /rules/preview
func (h *RuleHandler) PreviewDraftRule(c *gin.Context) {
	var req PreviewRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for rule preview", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.previewRuleUC.ExecuteDraft(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ExecuteRule handles POST /rules/:id/execute
func (h *RuleHandler) ExecuteRule(c *gin.Context) {
	ruleID, err := utils.ParseUintParam(c, "id", "rule")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.executeRuleUC.Execute(c.Request.Context(), usecases.ExecuteRuleCommand{RuleID: ruleID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Rule execution finished", result)
}
