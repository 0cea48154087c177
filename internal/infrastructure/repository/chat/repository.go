package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "supportchat/internal/domain/chat"
	"supportchat/internal/infrastructure/database/entities"
	"supportchat/internal/utils/platformerrors"
)

// Repository persists conversations and messages in PostgreSQL.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs the transcript repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

var _ domain.TranscriptStore = (*Repository)(nil)

// CreateConversation inserts a new empty conversation.
func (r *Repository) CreateConversation(ctx context.Context) (*domain.Conversation, error) {
	entity := entities.Conversation{}
	if err := r.db.WithContext(ctx).Create(&entity).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create conversation",
			err,
			"create-conversation-error",
		)
	}
	return entity.EtoD(), nil
}

// AppendMessage inserts a message and bumps the conversation's updated_at.
func (r *Repository) AppendMessage(ctx context.Context, conversationID uint, sender domain.Sender, text string) (*domain.Message, error) {
	entity := entities.Message{
		ConversationID: conversationID,
		Sender:         sender,
		Text:           text,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conversation entities.Conversation
		if err := tx.First(&conversation, conversationID).Error; err != nil {
			return err
		}
		if err := tx.Create(&entity).Error; err != nil {
			return err
		}
		return tx.Model(&entities.Conversation{}).
			Where("id = ?", conversationID).
			Update("updated_at", time.Now().UTC()).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				fmt.Sprintf("conversation not found: %d", conversationID),
				nil,
				"append-message-not-found",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to append message",
			err,
			"append-message-error",
		)
	}

	return entity.EtoD(), nil
}

// ListMessages returns all messages of a conversation in creation order.
func (r *Repository) ListMessages(ctx context.Context, conversationID uint) ([]domain.Message, error) {
	var rows []entities.Message
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list messages",
			err,
			"list-messages-error",
		)
	}

	messages := make([]domain.Message, 0, len(rows))
	for i := range rows {
		messages = append(messages, *rows[i].EtoD())
	}
	return messages, nil
}

// ConversationExists reports whether a conversation row exists.
func (r *Repository) ConversationExists(ctx context.Context, conversationID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Conversation{}).
		Where("id = ?", conversationID).
		Count(&count).Error; err != nil {
		return false, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to check conversation existence",
			err,
			"conversation-exists-error",
		)
	}
	return count > 0, nil
}
