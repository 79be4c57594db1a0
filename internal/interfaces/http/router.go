package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academy/internal/interfaces/http/middleware"
	"academy/internal/interfaces/http/routes"
	"academy/internal/shared/logger"
)

// Router owns the gin engine and registers all route groups.
type Router struct {
	engine    *gin.Engine
	container *Container
	log       logger.Interface
}

// NewRouter creates a new HTTP router backed by the container.
func NewRouter(container *Container, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(container.cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	return &Router{
		engine:    engine,
		container: container,
		log:       log,
	}
}

// SetupRoutes registers all route groups on the engine.
func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupRuleRoutes(r.engine, &routes.RuleRouteConfig{
		RuleHandler: r.container.ruleHandler,
	})
	routes.SetupCourseRoutes(r.engine, &routes.CourseRouteConfig{
		CourseHandler: r.container.courseHandler,
	})
	routes.SetupEmployeeRoutes(r.engine, &routes.EmployeeRouteConfig{
		EmployeeHandler: r.container.employeeHandler,
	})
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
