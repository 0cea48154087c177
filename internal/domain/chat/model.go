package chat

import (
	"context"
	"time"
)

// Sender identifies who authored a transcript message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Conversation is a chat session. Its numeric ID doubles as the session
// identifier exposed to clients.
type Conversation struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is a single persisted transcript entry.
type Message struct {
	ID             uint
	ConversationID uint
	Sender         Sender
	Text           string
	CreatedAt      time.Time
}

// TranscriptStore persists conversations and their ordered messages.
type TranscriptStore interface {
	// CreateConversation starts a new empty conversation.
	CreateConversation(ctx context.Context) (*Conversation, error)
	// AppendMessage adds a message to an existing conversation and bumps
	// the conversation's updated_at. Unknown conversations are a not-found
	// error.
	AppendMessage(ctx context.Context, conversationID uint, sender Sender, text string) (*Message, error)
	// ListMessages returns every message of a conversation in creation
	// order. An existing empty conversation yields an empty slice.
	ListMessages(ctx context.Context, conversationID uint) ([]Message, error)
	// ConversationExists reports whether the conversation is known.
	ConversationExists(ctx context.Context, conversationID uint) (bool, error)
}
