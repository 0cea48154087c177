package entities

import (
	"time"

	"supportchat/internal/domain/chat"
)

// Message represents the database schema for transcript messages
type Message struct {
	ID             uint        `gorm:"primaryKey"`
	ConversationID uint        `gorm:"index:idx_messages_conversation;not null"`
	Sender         chat.Sender `gorm:"type:varchar(20);not null"`
	Text           string      `gorm:"type:text;not null"`
	CreatedAt      time.Time   `gorm:"autoCreateTime;index:idx_messages_created_at"`
}

// TableName specifies the table name for Message.
func (Message) TableName() string {
	return "messages"
}

// EtoD converts database entity to domain model
func (m *Message) EtoD() *chat.Message {
	return &chat.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Sender:         m.Sender,
		Text:           m.Text,
		CreatedAt:      m.CreatedAt,
	}
}

// NewSchemaMessage creates a database entity from domain model
func NewSchemaMessage(m *chat.Message) *Message {
	return &Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Sender:         m.Sender,
		Text:           m.Text,
		CreatedAt:      m.CreatedAt,
	}
}
