package routes

import (
	"github.com/gin-gonic/gin"

	forumhandlers "sanad/internal/interfaces/http/handlers/forum"
	"sanad/internal/interfaces/http/middleware"
	"sanad/internal/shared/authorization"
)

type ForumRouteConfig struct {
	ForumHandler   *forumhandlers.ForumHandler
	AuthMiddleware *middleware.AuthMiddleware
	// WriteLimiter throttles content creation. Pass-through when rate
	// limiting is disabled.
	WriteLimiter gin.HandlerFunc
}

func SetupForumRoutes(engine *gin.Engine, config *ForumRouteConfig) {
	forum := engine.Group("/forum")
	{
		// Reads are public; admins with a token see hidden content.
		forum.GET("/topics",
			config.AuthMiddleware.OptionalAuth(),
			config.ForumHandler.ListTopics)
		forum.GET("/topics/:id",
			config.AuthMiddleware.OptionalAuth(),
			config.ForumHandler.GetTopicDetail)

		forum.POST("/topics",
			config.AuthMiddleware.RequireAuth(),
			config.WriteLimiter,
			config.ForumHandler.CreateTopic)
		forum.POST("/topics/:id/posts",
			config.AuthMiddleware.RequireAuth(),
			config.WriteLimiter,
			config.ForumHandler.CreatePost)

		forum.PATCH("/topics/:id/status",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.ForumHandler.ModerateTopic)
		forum.PATCH("/posts/:id/status",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.ForumHandler.ModeratePost)
	}
}
