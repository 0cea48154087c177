package responses

import (
	"time"

	"supportchat/internal/domain/chat"
)

// ChatMessageResponse is the body returned by POST /chat/message.
type ChatMessageResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"sessionId"`
}

// MessageResponse is a single transcript entry.
type MessageResponse struct {
	ID        uint      `json:"id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatHistoryResponse is the body returned by GET /chat/history/:session_id.
type ChatHistoryResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// NewChatHistoryResponse maps domain messages into the transport shape.
func NewChatHistoryResponse(messages []chat.Message) ChatHistoryResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, msg := range messages {
		out = append(out, MessageResponse{
			ID:        msg.ID,
			Sender:    string(msg.Sender),
			Text:      msg.Text,
			CreatedAt: msg.CreatedAt,
		})
	}
	return ChatHistoryResponse{Messages: out}
}
