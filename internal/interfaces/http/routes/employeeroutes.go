package routes

import (
	"github.com/gin-gonic/gin"

	employeehandlers "academy/internal/interfaces/http/handlers/employee"
)

type EmployeeRouteConfig struct {
	EmployeeHandler *employeehandlers.EmployeeHandler
}

func SetupEmployeeRoutes(engine *gin.Engine, config *EmployeeRouteConfig) {
	employees := engine.Group("/employees")
	{
		employees.POST("", config.EmployeeHandler.CreateEmployee)
		employees.GET("", config.EmployeeHandler.ListEmployees)

		employees.GET("/:id/enrollments", config.EmployeeHandler.ListEnrollments)

		employees.GET("/:id", config.EmployeeHandler.GetEmployee)
	}
}
