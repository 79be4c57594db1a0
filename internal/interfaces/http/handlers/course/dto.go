package course

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"academy/internal/application/course/usecases"
	"academy/internal/shared/constants"
)

type CreateCourseRequest struct {
	Title         string `json:"title" binding:"required,max=255"`
	Description   string `json:"description" binding:"max=5000"`
	Category      string `json:"category" binding:"max=100"`
	DurationHours *int   `json:"duration_hours,omitempty"`
	CreatedBy     string `json:"created_by" binding:"max=100"`
}

func (r *CreateCourseRequest) ToCommand() usecases.CreateCourseCommand {
	return usecases.CreateCourseCommand{
		Title:         r.Title,
		Description:   r.Description,
		Category:      r.Category,
		DurationHours: r.DurationHours,
		CreatedBy:     r.CreatedBy,
	}
}

type ListCoursesRequest struct {
	Page     int
	PageSize int
}

func (r *ListCoursesRequest) ToQuery() usecases.ListCoursesQuery {
	return usecases.ListCoursesQuery{
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

func parseListCoursesRequest(c *gin.Context) *ListCoursesRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = constants.DefaultPage
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	return &ListCoursesRequest{
		Page:     page,
		PageSize: pageSize,
	}
}
