package requests

// ChatMessageRequest is the body of POST /chat/message. SessionID is
// optional; when absent a new conversation is started.
type ChatMessageRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"sessionId"`
}
