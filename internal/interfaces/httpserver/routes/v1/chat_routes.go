package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jan-server/services/vision-chat-api/internal/domain/conversation"
	"jan-server/services/vision-chat-api/internal/interfaces/httpserver/handlers"
	"jan-server/services/vision-chat-api/internal/interfaces/httpserver/requests"
	"jan-server/services/vision-chat-api/internal/interfaces/httpserver/responses"
	"jan-server/services/vision-chat-api/internal/utils/platformerrors"
)

// RegisterChatRoutes registers the chat and conversation routes.
func RegisterChatRoutes(router gin.IRoutes, handler *handlers.ChatHandler) {
	router.POST("/chat/message", sendMessage(handler))
	router.GET("/chat/conversations", listConversations(handler))
	router.GET("/chat/conversations/:id", getConversation(handler))
	router.DELETE("/chat/conversations/:id", deleteConversation(handler))
	router.GET("/chat/stats", chatStats(handler))
}

// sendMessage godoc
// @Summary      Send a chat message
// @Description  Answers a message, continuing the conversation when conversation_id is given.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request body requests.ChatMessageRequest true "Chat message"
// @Success      200 {object} responses.ChatMessageResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      502 {object} responses.ErrorResponse
// @Router       /chat/message [post]
func sendMessage(handler *handlers.ChatHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.ChatMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, requests.ValidationMessage(err))
			return
		}

		resp, err := handler.SendMessage(c.Request.Context(), conversation.MessageRequest{
			Message:        req.Message,
			Context:        req.Context,
			ConversationID: req.ConversationID,
		})
		if err != nil {
			responses.HandleError(c, err, "failed to process chat message")
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// listConversations godoc
// @Summary      List conversations
// @Description  Lists conversation summaries ordered by most recent activity.
// @Tags         Chat
// @Produce      json
// @Success      200 {array} responses.ConversationSummaryResponse
// @Failure      500 {object} responses.ErrorResponse
// @Router       /chat/conversations [get]
func listConversations(handler *handlers.ChatHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		summaries, err := handler.ListConversations(c.Request.Context())
		if err != nil {
			responses.HandleError(c, err, "failed to list conversations")
			return
		}

		c.JSON(http.StatusOK, summaries)
	}
}

// getConversation godoc
// @Summary      Get a conversation
// @Description  Returns the full conversation history.
// @Tags         Chat
// @Produce      json
// @Param        id path string true "Conversation ID"
// @Success      200 {object} responses.ConversationResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /chat/conversations/{id} [get]
func getConversation(handler *handlers.ChatHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		conv, err := handler.GetConversation(c.Request.Context(), c.Param("id"))
		if err != nil {
			responses.HandleError(c, err, "failed to get conversation")
			return
		}

		c.JSON(http.StatusOK, conv)
	}
}

// deleteConversation godoc
// @Summary      Delete a conversation
// @Description  Deletes a conversation and all its messages.
// @Tags         Chat
// @Produce      json
// @Param        id path string true "Conversation ID"
// @Success      200 {object} responses.DeleteConversationResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /chat/conversations/{id} [delete]
func deleteConversation(handler *handlers.ChatHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := handler.DeleteConversation(c.Request.Context(), id); err != nil {
			responses.HandleError(c, err, "failed to delete conversation")
			return
		}

		c.JSON(http.StatusOK, responses.NewDeleteConversationResponse(id))
	}
}

// chatStats godoc
// @Summary      Chat statistics
// @Description  Returns conversation and message counters.
// @Tags         Chat
// @Produce      json
// @Success      200 {object} responses.StatsResponse
// @Router       /chat/stats [get]
func chatStats(handler *handlers.ChatHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := handler.Stats(c.Request.Context())
		if err != nil {
			responses.HandleError(c, err, "failed to get chat stats")
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}
