package llmprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"supportchat/internal/config"
	"supportchat/internal/domain/llm"
)

const huggingfaceProviderName = "huggingface"

type hfGenerateRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

// HuggingFaceProvider generates replies via the Hugging Face inference
// router using a flattened text prompt.
type HuggingFaceProvider struct {
	httpClient *resty.Client
	model      string
	maxTokens  int
	log        zerolog.Logger
}

// NewHuggingFaceProvider constructs the Hugging Face backed provider.
// Fails immediately when no API key is configured.
func NewHuggingFaceProvider(cfg *config.Config, log zerolog.Logger) (*HuggingFaceProvider, error) {
	if cfg.HuggingFaceAPIKey == "" {
		return nil, fmt.Errorf("huggingface: HUGGINGFACE_API_KEY is not set: %w", llm.ErrMissingCredential)
	}

	client := resty.New().
		SetBaseURL(cfg.HuggingFaceBaseURL).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(cfg.HuggingFaceAPIKey).
		SetTimeout(cfg.RequestTimeout)

	return &HuggingFaceProvider{
		httpClient: client,
		model:      cfg.Model(),
		maxTokens:  cfg.MaxTokens,
		log:        log.With().Str("component", "huggingface-provider").Logger(),
	}, nil
}

var _ llm.Provider = (*HuggingFaceProvider)(nil)

// GenerateReply posts a flattened prompt and extracts the text after the
// final "Assistant:" marker of the generation.
func (p *HuggingFaceProvider) GenerateReply(ctx context.Context, history []llm.Message, userMessage string) (string, error) {
	start := time.Now()

	var generations []hfGeneration
	resp, err := p.httpClient.R().
		SetContext(ctx).
		SetBody(hfGenerateRequest{
			Inputs: llm.FlattenPrompt(history, userMessage),
			Parameters: hfParameters{
				MaxNewTokens: p.maxTokens,
				Temperature:  0.7,
			},
		}).
		SetResult(&generations).
		Post(fmt.Sprintf("/models/%s", p.model))
	if err != nil {
		observe(huggingfaceProviderName, start, err)
		return "", llm.NewProviderError(huggingfaceProviderName, classifyTransportError(err), err)
	}

	if resp.IsError() {
		err := fmt.Errorf("inference router returned HTTP %d", resp.StatusCode())
		observe(huggingfaceProviderName, start, err)
		return "", llm.NewProviderError(huggingfaceProviderName, classifyHTTPStatus(resp.StatusCode()), err)
	}

	if len(generations) == 0 || generations[0].GeneratedText == "" {
		err := fmt.Errorf("generation contained no text")
		observe(huggingfaceProviderName, start, err)
		return "", llm.NewProviderError(huggingfaceProviderName, llm.FailureEmptyResponse, err)
	}

	reply := extractAssistantReply(generations[0].GeneratedText)
	if reply == "" {
		err := fmt.Errorf("generation contained no assistant turn")
		observe(huggingfaceProviderName, start, err)
		return "", llm.NewProviderError(huggingfaceProviderName, llm.FailureEmptyResponse, err)
	}

	observe(huggingfaceProviderName, start, nil)
	return reply, nil
}

// extractAssistantReply strips the echoed prompt from a completion. Models
// behind the router return the full prompt plus the continuation.
func extractAssistantReply(generated string) string {
	parts := strings.Split(generated, "Assistant:")
	return strings.TrimSpace(parts[len(parts)-1])
}
