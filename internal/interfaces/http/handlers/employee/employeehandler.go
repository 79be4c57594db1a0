package employee

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academy/internal/application/employee/usecases"
	enrollmentUsecases "academy/internal/application/enrollment/usecases"
	"academy/internal/shared/logger"
	"academy/internal/shared/utils"
)

type EmployeeHandler struct {
	createEmployeeUC  *usecases.CreateEmployeeUseCase
	getEmployeeUC     *usecases.GetEmployeeUseCase
	listEmployeesUC   *usecases.ListEmployeesUseCase
	listEnrollmentsUC *enrollmentUsecases.ListEmployeeEnrollmentsUseCase
	logger            logger.Interface
}

func NewEmployeeHandler(
	createEmployeeUC *usecases.CreateEmployeeUseCase,
	getEmployeeUC *usecases.GetEmployeeUseCase,
	listEmployeesUC *usecases.ListEmployeesUseCase,
	listEnrollmentsUC *enrollmentUsecases.ListEmployeeEnrollmentsUseCase,
) *EmployeeHandler {
	return &EmployeeHandler{
		createEmployeeUC:  createEmployeeUC,
		getEmployeeUC:     getEmployeeUC,
		listEmployeesUC:   listEmployeesUC,
		listEnrollmentsUC: listEnrollmentsUC,
		logger:            logger.NewLogger(),
	}
}

// CreateEmployee handles POST /employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create employee", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createEmployeeUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Employee created successfully")
}

// GetEmployee handles GET /employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employeeID, err := utils.ParseUintParam(c, "id", "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getEmployeeUC.Execute(c.Request.Context(), employeeID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListEmployees handles GET /employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	req := parseListEmployeesRequest(c)

	result, err := h.listEmployeesUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Employees, result.Total, result.Page, result.PageSize)
}

// ListEnrollments handles GET /employees/:id/enrollments
func (h *EmployeeHandler) ListEnrollments(c *gin.Context) {
	employeeID, err := utils.ParseUintParam(c, "id", "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listEnrollmentsUC.Execute(c.Request.Context(), employeeID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
