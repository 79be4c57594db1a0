package routes

import (
	"github.com/gin-gonic/gin"

	coursehandlers "academy/internal/interfaces/http/handlers/course"
)

type CourseRouteConfig struct {
	CourseHandler *coursehandlers.CourseHandler
}

func SetupCourseRoutes(engine *gin.Engine, config *CourseRouteConfig) {
	courses := engine.Group("/courses")
	{
		courses.POST("", config.CourseHandler.CreateCourse)
		courses.GET("", config.CourseHandler.ListCourses)

		courses.POST("/:id/publish", config.CourseHandler.PublishCourse)
		courses.POST("/:id/reexecute-rules", config.CourseHandler.ReexecuteRules)

		courses.GET("/:id", config.CourseHandler.GetCourse)
	}
}
