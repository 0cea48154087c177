package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"supportchat/internal/domain/chat"
	"supportchat/internal/interfaces/httpserver/requests"
	"supportchat/internal/interfaces/httpserver/responses"
	"supportchat/internal/utils/platformerrors"
)

// ChatService is the orchestrator surface the handler depends on.
type ChatService interface {
	SubmitMessage(ctx context.Context, text string, sessionID string) (string, string, error)
	GetHistory(ctx context.Context, sessionID string) ([]chat.Message, error)
}

// ChatHandler exposes the chat endpoints.
type ChatHandler struct {
	service ChatService
	log     zerolog.Logger
}

func NewChatHandler(service ChatService, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log.With().Str("component", "chat-handler").Logger(),
	}
}

// SubmitMessage accepts a user message, optionally bound to an existing
// session, and returns the assistant reply with the session ID.
func (h *ChatHandler) SubmitMessage(c *gin.Context) {
	var req requests.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
			"Message cannot be empty", "chat-message-bind-error")
		return
	}

	reply, sessionID, err := h.service.SubmitMessage(c.Request.Context(), req.Message, req.SessionID)
	if err != nil {
		responses.HandleError(c, err, "failed to handle chat message")
		return
	}

	c.JSON(http.StatusOK, responses.ChatMessageResponse{
		Reply:     reply,
		SessionID: sessionID,
	})
}

// GetHistory returns the full transcript of a session in creation order.
func (h *ChatHandler) GetHistory(c *gin.Context) {
	messages, err := h.service.GetHistory(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		responses.HandleError(c, err, "failed to fetch chat history")
		return
	}

	c.JSON(http.StatusOK, responses.NewChatHistoryResponse(messages))
}
