package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"supportchat/internal/config"
	"supportchat/internal/domain/llm"
)

const openaiProviderName = "openai"

// OpenAIProvider generates replies via the OpenAI chat completions API.
type OpenAIProvider struct {
	client    *openai.Client
	model     string
	maxTokens int
	timeout   time.Duration
	log       zerolog.Logger
}

// NewOpenAIProvider constructs the OpenAI-backed provider. Fails
// immediately when no API key is configured.
func NewOpenAIProvider(cfg *config.Config, log zerolog.Logger) (*OpenAIProvider, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("openai: OPENAI_API_KEY is not set: %w", llm.ErrMissingCredential)
	}

	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}

	return &OpenAIProvider{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.Model(),
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.RequestTimeout,
		log:       log.With().Str("component", "openai-provider").Logger(),
	}, nil
}

var _ llm.Provider = (*OpenAIProvider)(nil)

// GenerateReply sends the system prompt, windowed history, and new user
// message as chat messages.
func (p *OpenAIProvider) GenerateReply(ctx context.Context, history []llm.Message, userMessage string) (string, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, llm.HistoryWindow+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: llm.SystemPrompt,
	})
	for _, msg := range llm.Window(history) {
		role := openai.ChatMessageRoleUser
		if msg.Role == llm.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: msg.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    messages,
		MaxTokens:   p.maxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		observe(openaiProviderName, start, err)
		return "", llm.NewProviderError(openaiProviderName, classifyOpenAIError(err), err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		err := fmt.Errorf("completion contained no content")
		observe(openaiProviderName, start, err)
		return "", llm.NewProviderError(openaiProviderName, llm.FailureEmptyResponse, err)
	}

	observe(openaiProviderName, start, nil)
	return resp.Choices[0].Message.Content, nil
}

func classifyOpenAIError(err error) llm.FailureKind {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyHTTPStatus(apiErr.HTTPStatusCode)
	}
	return classifyTransportError(err)
}
