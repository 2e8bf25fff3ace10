// Package http wires repositories, use cases, handlers and middleware
// into the portal's HTTP surface.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	applicationusecases "sanad/internal/application/application/usecases"
	forumusecases "sanad/internal/application/forum/usecases"
	informationusecases "sanad/internal/application/information/usecases"
	messagingusecases "sanad/internal/application/messaging/usecases"
	profileusecases "sanad/internal/application/profile/usecases"
	"sanad/internal/infrastructure/auth"
	"sanad/internal/infrastructure/config"
	"sanad/internal/infrastructure/repository"
	applicationhandlers "sanad/internal/interfaces/http/handlers/application"
	forumhandlers "sanad/internal/interfaces/http/handlers/forum"
	informationhandlers "sanad/internal/interfaces/http/handlers/information"
	messaginghandlers "sanad/internal/interfaces/http/handlers/messaging"
	profilehandlers "sanad/internal/interfaces/http/handlers/profile"
	"sanad/internal/interfaces/http/middleware"
	"sanad/internal/interfaces/http/routes"
	"sanad/internal/shared/db"
	"sanad/internal/shared/logger"
	"sanad/internal/shared/utils"
)

type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface

	profileConfig     *routes.ProfileRouteConfig
	applicationConfig *routes.ApplicationRouteConfig
	forumConfig       *routes.ForumRouteConfig
	messagingConfig   *routes.MessagingRouteConfig
	informationConfig *routes.InformationRouteConfig
}

// NewRouter builds the full dependency graph from the database handle and
// configuration.
func NewRouter(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	beneficiaryRepo := repository.NewBeneficiaryRepository(gormDB)
	caseWorkerRepo := repository.NewCaseWorkerRepository(gormDB)
	applicationRepo := repository.NewApplicationRepository(gormDB)
	topicRepo := repository.NewForumTopicRepository(gormDB)
	postRepo := repository.NewForumPostRepository(gormDB)
	conversationRepo := repository.NewConversationRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)
	benefitRepo := repository.NewBenefitRepository(gormDB)
	faqRepo := repository.NewFAQRepository(gormDB)

	txManager := db.NewTransactionManager(gormDB)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	writeLimiter := passThrough()
	if cfg.RateLimit.Enabled && redisClient != nil {
		rl := middleware.NewRateLimiter(
			redisClient,
			cfg.RateLimit.WriteLimit,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)
		writeLimiter = rl.Limit()
	}

	profileHandler := profilehandlers.NewProfileHandler(
		profileusecases.NewGetProfileUseCase(beneficiaryRepo, log),
		profileusecases.NewEnsureProfileUseCase(beneficiaryRepo, log),
		profileusecases.NewUpdateProfileUseCase(beneficiaryRepo, log),
	)

	applicationHandler := applicationhandlers.NewApplicationHandler(
		applicationusecases.NewSubmitFinancialApplicationUseCase(applicationRepo, beneficiaryRepo, log),
		applicationusecases.NewSubmitMedicalApplicationUseCase(applicationRepo, beneficiaryRepo, log),
		applicationusecases.NewSubmitEducationalApplicationUseCase(applicationRepo, beneficiaryRepo, log),
		applicationusecases.NewSubmitOtherApplicationUseCase(applicationRepo, beneficiaryRepo, log),
		applicationusecases.NewListMyApplicationsUseCase(applicationRepo, beneficiaryRepo, log),
	)

	forumHandler := forumhandlers.NewForumHandler(
		forumusecases.NewListTopicsUseCase(topicRepo, beneficiaryRepo, log),
		forumusecases.NewGetTopicDetailUseCase(topicRepo, postRepo, beneficiaryRepo, log),
		forumusecases.NewCreateTopicUseCase(topicRepo, postRepo, beneficiaryRepo, txManager, log),
		forumusecases.NewCreatePostUseCase(topicRepo, postRepo, beneficiaryRepo, txManager, log),
		forumusecases.NewModerateTopicUseCase(topicRepo, log),
		forumusecases.NewModeratePostUseCase(postRepo, log),
	)

	resolver := messagingusecases.NewParticipantResolver(beneficiaryRepo, caseWorkerRepo)
	messagingHandler := messaginghandlers.NewMessagingHandler(
		messagingusecases.NewListConversationsUseCase(conversationRepo, messageRepo, resolver, log),
		messagingusecases.NewListMessagesUseCase(conversationRepo, messageRepo, resolver, txManager, log),
		messagingusecases.NewSendMessageUseCase(conversationRepo, messageRepo, resolver, txManager, log),
	)

	informationHandler := informationhandlers.NewInformationHandler(
		informationusecases.NewListBenefitsUseCase(benefitRepo, log),
		informationusecases.NewListFAQsUseCase(faqRepo, log),
	)

	return &Router{
		engine: engine,
		cfg:    cfg,
		log:    log,
		profileConfig: &routes.ProfileRouteConfig{
			ProfileHandler: profileHandler,
			AuthMiddleware: authMiddleware,
		},
		applicationConfig: &routes.ApplicationRouteConfig{
			ApplicationHandler: applicationHandler,
			AuthMiddleware:     authMiddleware,
		},
		forumConfig: &routes.ForumRouteConfig{
			ForumHandler:   forumHandler,
			AuthMiddleware: authMiddleware,
			WriteLimiter:   writeLimiter,
		},
		messagingConfig: &routes.MessagingRouteConfig{
			MessagingHandler: messagingHandler,
			AuthMiddleware:   authMiddleware,
			WriteLimiter:     writeLimiter,
		},
		informationConfig: &routes.InformationRouteConfig{
			InformationHandler: informationHandler,
		},
	}
}

// SetupRoutes registers global middleware and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "", gin.H{"status": "ok"})
	})

	routes.SetupProfileRoutes(r.engine, r.profileConfig)
	routes.SetupApplicationRoutes(r.engine, r.applicationConfig)
	routes.SetupForumRoutes(r.engine, r.forumConfig)
	routes.SetupMessagingRoutes(r.engine, r.messagingConfig)
	routes.SetupInformationRoutes(r.engine, r.informationConfig)
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func passThrough() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}
