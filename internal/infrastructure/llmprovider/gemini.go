package llmprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"supportchat/internal/config"
	"supportchat/internal/domain/llm"
)

const geminiProviderName = "gemini"

// geminiRequest is the generateContent request body.
type geminiRequest struct {
	Contents          []geminiContent          `json:"contents"`
	SystemInstruction *geminiSystemInstruction `json:"system_instruction,omitempty"`
}

type geminiSystemInstruction struct {
	Parts []geminiPart `json:"parts"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"` // "user" or "model"
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content struct {
		Parts []geminiPart `json:"parts"`
	} `json:"content"`
}

// GeminiProvider generates replies via the Gemini generateContent API.
type GeminiProvider struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	log        zerolog.Logger
}

// NewGeminiProvider constructs the Gemini-backed provider. Fails
// immediately when no API key is configured.
func NewGeminiProvider(cfg *config.Config, log zerolog.Logger) (*GeminiProvider, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("gemini: GEMINI_API_KEY is not set: %w", llm.ErrMissingCredential)
	}

	return &GeminiProvider{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    cfg.GeminiBaseURL,
		apiKey:     cfg.GeminiAPIKey,
		model:      cfg.Model(),
		log:        log.With().Str("component", "gemini-provider").Logger(),
	}, nil
}

var _ llm.Provider = (*GeminiProvider)(nil)

// GenerateReply sends the windowed history as structured contents with the
// system prompt as a system instruction. Gemini names the assistant role
// "model".
func (p *GeminiProvider) GenerateReply(ctx context.Context, history []llm.Message, userMessage string) (string, error) {
	start := time.Now()

	windowed := llm.Window(history)
	contents := make([]geminiContent, 0, len(windowed)+1)
	for _, msg := range windowed {
		role := "user"
		if msg.Role == llm.RoleAssistant {
			role = "model"
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: msg.Content}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: userMessage}},
	})

	reqBody := geminiRequest{
		Contents: contents,
		SystemInstruction: &geminiSystemInstruction{
			Parts: []geminiPart{{Text: llm.SystemPrompt}},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		observe(geminiProviderName, start, err)
		return "", llm.NewProviderError(geminiProviderName, llm.FailureUnknown, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", p.baseURL, p.model, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		observe(geminiProviderName, start, err)
		return "", llm.NewProviderError(geminiProviderName, llm.FailureUnknown, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		observe(geminiProviderName, start, err)
		return "", llm.NewProviderError(geminiProviderName, classifyTransportError(err), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observe(geminiProviderName, start, err)
		return "", llm.NewProviderError(geminiProviderName, llm.FailureUnreachable, err)
	}

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("generateContent returned HTTP %d", resp.StatusCode)
		observe(geminiProviderName, start, err)
		return "", llm.NewProviderError(geminiProviderName, classifyHTTPStatus(resp.StatusCode), err)
	}

	var result geminiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		observe(geminiProviderName, start, err)
		return "", llm.NewProviderError(geminiProviderName, llm.FailureEmptyResponse, err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 ||
		result.Candidates[0].Content.Parts[0].Text == "" {
		err := fmt.Errorf("response contained no candidates")
		observe(geminiProviderName, start, err)
		return "", llm.NewProviderError(geminiProviderName, llm.FailureEmptyResponse, err)
	}

	observe(geminiProviderName, start, nil)
	return result.Candidates[0].Content.Parts[0].Text, nil
}
