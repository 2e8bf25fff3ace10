package routes

import (
	"github.com/gin-gonic/gin"

	applicationhandlers "sanad/internal/interfaces/http/handlers/application"
	"sanad/internal/interfaces/http/middleware"
)

type ApplicationRouteConfig struct {
	ApplicationHandler *applicationhandlers.ApplicationHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

func SetupApplicationRoutes(engine *gin.Engine, config *ApplicationRouteConfig) {
	applications := engine.Group("/applications")
	applications.Use(config.AuthMiddleware.RequireAuth())
	{
		applications.GET("", config.ApplicationHandler.ListMyApplications)
		applications.POST("/financial", config.ApplicationHandler.SubmitFinancial)
		applications.POST("/medical", config.ApplicationHandler.SubmitMedical)
		applications.POST("/educational", config.ApplicationHandler.SubmitEducational)
		applications.POST("/other", config.ApplicationHandler.SubmitOther)
	}
}
