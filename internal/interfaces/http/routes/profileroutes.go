package routes

import (
	"github.com/gin-gonic/gin"

	profilehandlers "sanad/internal/interfaces/http/handlers/profile"
	"sanad/internal/interfaces/http/middleware"
)

type ProfileRouteConfig struct {
	ProfileHandler *profilehandlers.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupProfileRoutes(engine *gin.Engine, config *ProfileRouteConfig) {
	profile := engine.Group("/profile")
	profile.Use(config.AuthMiddleware.RequireAuth())
	{
		profile.GET("", config.ProfileHandler.GetProfile)
		profile.PUT("", config.ProfileHandler.UpdateProfile)
		profile.POST("/ensure", config.ProfileHandler.EnsureProfile)
	}
}
