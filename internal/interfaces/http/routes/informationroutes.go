package routes

import (
	"github.com/gin-gonic/gin"

	informationhandlers "sanad/internal/interfaces/http/handlers/information"
)

type InformationRouteConfig struct {
	InformationHandler *informationhandlers.InformationHandler
}

// Information content is public, no authentication required.
func SetupInformationRoutes(engine *gin.Engine, config *InformationRouteConfig) {
	information := engine.Group("/information")
	{
		information.GET("/benefits", config.InformationHandler.ListBenefits)
		information.GET("/faqs", config.InformationHandler.ListFAQs)
	}
}
