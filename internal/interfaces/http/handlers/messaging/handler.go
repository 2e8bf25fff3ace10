package messaging

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sanad/internal/application/messaging/usecases"
	"sanad/internal/shared/constants"
	"sanad/internal/shared/logger"
	"sanad/internal/shared/utils"
)

type MessagingHandler struct {
	listConversationsUC usecases.ListConversationsExecutor
	listMessagesUC      usecases.ListMessagesExecutor
	sendMessageUC       usecases.SendMessageExecutor
	logger              logger.Interface
}

func NewMessagingHandler(
	listConversationsUC usecases.ListConversationsExecutor,
	listMessagesUC usecases.ListMessagesExecutor,
	sendMessageUC usecases.SendMessageExecutor,
) *MessagingHandler {
	return &MessagingHandler{
		listConversationsUC: listConversationsUC,
		listMessagesUC:      listMessagesUC,
		sendMessageUC:       sendMessageUC,
		logger:              logger.NewLogger(),
	}
}

// ListConversations handles GET /conversations
func (h *MessagingHandler) ListConversations(c *gin.Context) {
	result, err := h.listConversationsUC.Execute(c.Request.Context(), usecases.ListConversationsQuery{
		ExternalUserID: c.GetString(constants.ContextKeyExternalUserID),
	})
	if err != nil {
		utils.ListErrorResponseWithError(c, err, []ConversationResponse{})
		return
	}

	utils.ListSuccessResponse(c, toConversationResponses(result))
}

// ListMessages handles GET /conversations/:id/messages
func (h *MessagingHandler) ListMessages(c *gin.Context) {
	conversationID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listMessagesUC.Execute(c.Request.Context(), usecases.ListMessagesQuery{
		ExternalUserID: c.GetString(constants.ContextKeyExternalUserID),
		ConversationID: conversationID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toMessageThreadResponse(result))
}

// SendMessage handles POST /conversations/:id/messages
func (h *MessagingHandler) SendMessage(c *gin.Context) {
	conversationID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for send message", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.sendMessageUC.Execute(c.Request.Context(), usecases.SendMessageCommand{
		ExternalUserID: c.GetString(constants.ContextKeyExternalUserID),
		ConversationID: conversationID,
		Content:        req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"id": result.MessageID}, "Message sent successfully.")
}
