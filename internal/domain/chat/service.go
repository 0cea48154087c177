package chat

import (
	"context"
	"strconv"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"supportchat/internal/domain/llm"
	"supportchat/internal/utils/platformerrors"
)

// MaxMessageRunes bounds the length of an inbound user message.
const MaxMessageRunes = 5000

// unavailableMessage is the only detail exposed to clients when reply
// generation fails. Provider specifics stay in the logs.
const unavailableMessage = "AI service temporarily unavailable. Please try again later."

// Service orchestrates the chat pipeline: session resolution, transcript
// persistence, and reply generation.
type Service struct {
	store    TranscriptStore
	provider llm.Provider
	log      zerolog.Logger
}

// NewService constructs the chat service.
func NewService(store TranscriptStore, provider llm.Provider, log zerolog.Logger) *Service {
	return &Service{
		store:    store,
		provider: provider,
		log:      log.With().Str("component", "chat-service").Logger(),
	}
}

// SubmitMessage runs one turn of the pipeline. An empty sessionID starts a
// new conversation; otherwise the session must already exist. It returns
// the assistant reply and the session ID as a decimal string.
//
// The user message is persisted before reply generation, so a provider
// failure leaves the user's turn in the transcript.
func (s *Service) SubmitMessage(ctx context.Context, text string, sessionID string) (string, string, error) {
	if text == "" {
		return "", "", platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "Message cannot be empty", nil, "submit-empty-message")
	}
	if utf8.RuneCountInString(text) > MaxMessageRunes {
		return "", "", platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "Message is too long", nil, "submit-message-too-long")
	}

	conversationID, err := s.resolveSession(ctx, sessionID)
	if err != nil {
		return "", "", err
	}

	userMsg, err := s.store.AppendMessage(ctx, conversationID, SenderUser, text)
	if err != nil {
		return "", "", err
	}

	transcript, err := s.store.ListMessages(ctx, conversationID)
	if err != nil {
		return "", "", err
	}

	// The transcript now ends with the message just appended; the provider
	// receives it separately as the new user turn.
	history := transcript
	if n := len(history); n > 0 && history[n-1].ID == userMsg.ID {
		history = history[:n-1]
	}

	reply, err := s.provider.GenerateReply(ctx, toProviderHistory(history), text)
	if err != nil {
		kind := llm.KindOf(err)
		s.log.Error().
			Err(err).
			Uint("conversation_id", conversationID).
			Str("failure_kind", string(kind)).
			Msg("reply generation failed")
		return "", "", platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeUpstreamUnavailable, unavailableMessage, err,
			"submit-provider-unavailable", map[string]any{"failure_kind": string(kind)})
	}

	if _, err := s.store.AppendMessage(ctx, conversationID, SenderAssistant, reply); err != nil {
		return "", "", err
	}

	return reply, strconv.FormatUint(uint64(conversationID), 10), nil
}

// GetHistory returns the full transcript of an existing session in
// creation order.
func (s *Service) GetHistory(ctx context.Context, sessionID string) ([]Message, error) {
	conversationID, err := parseSessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	exists, err := s.store.ConversationExists(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound, "Session not found", nil, "history-session-not-found")
	}

	return s.store.ListMessages(ctx, conversationID)
}

func (s *Service) resolveSession(ctx context.Context, sessionID string) (uint, error) {
	if sessionID == "" {
		conversation, err := s.store.CreateConversation(ctx)
		if err != nil {
			return 0, err
		}
		s.log.Debug().Uint("conversation_id", conversation.ID).Msg("conversation created")
		return conversation.ID, nil
	}

	conversationID, err := parseSessionID(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	exists, err := s.store.ConversationExists(ctx, conversationID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound, "Session not found", nil, "submit-session-not-found")
	}
	return conversationID, nil
}

func parseSessionID(ctx context.Context, sessionID string) (uint, error) {
	id, err := strconv.ParseUint(sessionID, 10, 32)
	if err != nil || id == 0 {
		return 0, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "Invalid session ID", err, "invalid-session-id")
	}
	return uint(id), nil
}

func toProviderHistory(messages []Message) []llm.Message {
	history := make([]llm.Message, 0, len(messages))
	for _, msg := range messages {
		role := llm.RoleUser
		if msg.Sender == SenderAssistant {
			role = llm.RoleAssistant
		}
		history = append(history, llm.Message{Role: role, Content: msg.Text})
	}
	return history
}
