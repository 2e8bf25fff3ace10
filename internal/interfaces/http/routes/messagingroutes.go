package routes

import (
	"github.com/gin-gonic/gin"

	messaginghandlers "sanad/internal/interfaces/http/handlers/messaging"
	"sanad/internal/interfaces/http/middleware"
)

type MessagingRouteConfig struct {
	MessagingHandler *messaginghandlers.MessagingHandler
	AuthMiddleware   *middleware.AuthMiddleware
	WriteLimiter     gin.HandlerFunc
}

func SetupMessagingRoutes(engine *gin.Engine, config *MessagingRouteConfig) {
	conversations := engine.Group("/conversations")
	conversations.Use(config.AuthMiddleware.RequireAuth())
	{
		conversations.GET("", config.MessagingHandler.ListConversations)
		conversations.GET("/:id/messages", config.MessagingHandler.ListMessages)
		conversations.POST("/:id/messages",
			config.WriteLimiter,
			config.MessagingHandler.SendMessage)
	}
}
