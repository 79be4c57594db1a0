package course

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academy/internal/application/course/usecases"
	"academy/internal/shared/logger"
	"academy/internal/shared/utils"
)

type CourseHandler struct {
	createCourseUC   *usecases.CreateCourseUseCase
	getCourseUC      *usecases.GetCourseUseCase
	listCoursesUC    *usecases.ListCoursesUseCase
	publishCourseUC  *usecases.PublishCourseUseCase
	reexecuteRulesUC *usecases.ReexecuteCourseRulesUseCase
	logger           logger.Interface
}

func NewCourseHandler(
	createCourseUC *usecases.CreateCourseUseCase,
	getCourseUC *usecases.GetCourseUseCase,
	listCoursesUC *usecases.ListCoursesUseCase,
	publishCourseUC *usecases.PublishCourseUseCase,
	reexecuteRulesUC *usecases.ReexecuteCourseRulesUseCase,
) *CourseHandler {
	return &CourseHandler{
		createCourseUC:   createCourseUC,
		getCourseUC:      getCourseUC,
		listCoursesUC:    listCoursesUC,
		publishCourseUC:  publishCourseUC,
		reexecuteRulesUC: reexecuteRulesUC,
		logger:           logger.NewLogger(),
	}
}

// CreateCourse handles POST /courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create course", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createCourseUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Course created successfully")
}

// GetCourse handles GET /courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	courseID, err := utils.ParseUintParam(c, "id", "course")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCourseUC.Execute(c.Request.Context(), courseID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListCourses handles GET /courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	req := parseListCoursesRequest(c)

	result, err := h.listCoursesUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Courses, result.Total, result.Page, result.PageSize)
}

// PublishCourse handles POST /courses/:id/publish
func (h *CourseHandler) PublishCourse(c *gin.Context) {
	courseID, err := utils.ParseUintParam(c, "id", "course")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.publishCourseUC.Execute(c.Request.Context(), courseID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Course published successfully", result)
}

// ReexecuteRules handles POST /courses/:id/reexecute-rules
func (h *CourseHandler) ReexecuteRules(c *gin.Context) {
	courseID, err := utils.ParseUintParam(c, "id", "course")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reexecuteRulesUC.Execute(c.Request.Context(), courseID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Course rules executed", result)
}
