package forum

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sanad/internal/application/forum/usecases"
	"sanad/internal/shared/constants"
	"sanad/internal/shared/logger"
	"sanad/internal/shared/utils"
)

type ForumHandler struct {
	listTopicsUC     usecases.ListTopicsExecutor
	getTopicDetailUC usecases.GetTopicDetailExecutor
	createTopicUC    usecases.CreateTopicExecutor
	createPostUC     usecases.CreatePostExecutor
	moderateTopicUC  usecases.ModerateTopicExecutor
	moderatePostUC   usecases.ModeratePostExecutor
	logger           logger.Interface
}

func NewForumHandler(
	listTopicsUC usecases.ListTopicsExecutor,
	getTopicDetailUC usecases.GetTopicDetailExecutor,
	createTopicUC usecases.CreateTopicExecutor,
	createPostUC usecases.CreatePostExecutor,
	moderateTopicUC usecases.ModerateTopicExecutor,
	moderatePostUC usecases.ModeratePostExecutor,
) *ForumHandler {
	return &ForumHandler{
		listTopicsUC:     listTopicsUC,
		getTopicDetailUC: getTopicDetailUC,
		createTopicUC:    createTopicUC,
		createPostUC:     createPostUC,
		moderateTopicUC:  moderateTopicUC,
		moderatePostUC:   moderatePostUC,
		logger:           logger.NewLogger(),
	}
}

// ListTopics handles GET /forum/topics
func (h *ForumHandler) ListTopics(c *gin.Context) {
	result, err := h.listTopicsUC.Execute(c.Request.Context(), usecases.ListTopicsQuery{
		IsAdmin: c.GetBool(constants.ContextKeyIsAdmin),
	})
	if err != nil {
		utils.ListErrorResponseWithError(c, err, []TopicResponse{})
		return
	}

	utils.ListSuccessResponse(c, toTopicResponses(result))
}

// GetTopicDetail handles GET /forum/topics/:id
func (h *ForumHandler) GetTopicDetail(c *gin.Context) {
	topicID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTopicDetailUC.Execute(c.Request.Context(), usecases.GetTopicDetailQuery{
		TopicID: topicID,
		IsAdmin: c.GetBool(constants.ContextKeyIsAdmin),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toTopicDetailResponse(result))
}

// CreateTopic handles POST /forum/topics
func (h *ForumHandler) CreateTopic(c *gin.Context) {
	var req CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create topic", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTopicUC.Execute(c.Request.Context(), req.ToCommand(c.GetString(constants.ContextKeyExternalUserID)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"id": result.TopicID}, "Topic created successfully.")
}

// CreatePost handles POST /forum/topics/:id/posts
func (h *ForumHandler) CreatePost(c *gin.Context) {
	topicID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create post", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createPostUC.Execute(c.Request.Context(), usecases.CreatePostCommand{
		ExternalUserID: c.GetString(constants.ContextKeyExternalUserID),
		TopicID:        topicID,
		Content:        req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"id": result.PostID}, "Post created successfully.")
}

// ModerateTopic handles PATCH /forum/topics/:id/status
func (h *ForumHandler) ModerateTopic(c *gin.Context) {
	topicID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for moderate topic", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.moderateTopicUC.Execute(c.Request.Context(), usecases.ModerateTopicCommand{
		TopicID: topicID,
		Status:  req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Topic updated successfully.", gin.H{
		"id":     result.TopicID,
		"status": result.Status,
	})
}

// ModeratePost handles PATCH /forum/posts/:id/status
func (h *ForumHandler) ModeratePost(c *gin.Context) {
	postID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for moderate post", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.moderatePostUC.Execute(c.Request.Context(), usecases.ModeratePostCommand{
		PostID: postID,
		Status: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Post updated successfully.", gin.H{
		"id":     result.PostID,
		"status": result.Status,
	})
}
