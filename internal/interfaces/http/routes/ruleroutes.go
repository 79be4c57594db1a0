package routes

import (
	"github.com/gin-gonic/gin"

	rulehandlers "academy/internal/interfaces/http/handlers/rule"
)

type RuleRouteConfig struct {
	RuleHandler *rulehandlers.RuleHandler
}

func SetupRuleRoutes(engine *gin.Engine, config *RuleRouteConfig) {
	rules := engine.Group("/rules")
	{
		rules.POST("", config.RuleHandler.CreateRule)
		rules.GET("", config.RuleHandler.ListRules)
		rules.GET("/active", config.RuleHandler.ListActiveRules)
		rules.POST("/preview", config.RuleHandler.PreviewDraftRule)

		// Action endpoints come before the generic /:id routes.
		rules.POST("/:id/activate", config.RuleHandler.ActivateRule)
		rules.POST("/:id/deactivate", config.RuleHandler.DeactivateRule)
		rules.GET("/:id/preview", config.RuleHandler.PreviewRule)
		rules.POST("/:id/execute", config.RuleHandler.ExecuteRule)

		rules.GET("/:id", config.RuleHandler.GetRule)
		rules.PUT("/:id", config.RuleHandler.UpdateRule)
		rules.DELETE("/:id", config.RuleHandler.DeleteRule)
	}
}
