package llmprovider

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"supportchat/internal/config"
	"supportchat/internal/domain/llm"
)

func baseConfig() *config.Config {
	return &config.Config{
		LLMProvider:        config.ProviderOpenAI,
		MaxTokens:          500,
		RequestTimeout:     30 * time.Second,
		GeminiBaseURL:      "https://generativelanguage.googleapis.com/v1beta",
		HuggingFaceBaseURL: "https://router.huggingface.co",
	}
}

func TestNew_MockMode(t *testing.T) {
	cfg := baseConfig()
	cfg.UseMockAI = true

	provider, err := New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, ok := provider.(*MockProvider); !ok {
		t.Errorf("Expected *MockProvider, got %T", provider)
	}
}

func TestNew_MissingCredentialFailsFast(t *testing.T) {
	for _, name := range []string{config.ProviderOpenAI, config.ProviderGemini, config.ProviderHuggingFace} {
		t.Run(name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.LLMProvider = name

			_, err := New(cfg, zerolog.Nop())
			if !errors.Is(err, llm.ErrMissingCredential) {
				t.Fatalf("Expected missing credential error, got %v", err)
			}
		})
	}
}

func TestNew_ConfiguredProviders(t *testing.T) {
	cases := []struct {
		name  string
		setup func(cfg *config.Config)
	}{
		{config.ProviderOpenAI, func(cfg *config.Config) { cfg.OpenAIAPIKey = "sk-test" }},
		{config.ProviderGemini, func(cfg *config.Config) { cfg.GeminiAPIKey = "gm-test" }},
		{config.ProviderHuggingFace, func(cfg *config.Config) { cfg.HuggingFaceAPIKey = "hf-test" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.LLMProvider = tc.name
			tc.setup(cfg)

			provider, err := New(cfg, zerolog.Nop())
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if provider == nil {
				t.Fatal("Expected a provider")
			}
		})
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	cfg := baseConfig()
	cfg.LLMProvider = "anthropic"

	if _, err := New(cfg, zerolog.Nop()); err == nil {
		t.Fatal("Expected error for unknown provider")
	}
}

func TestClassifyOpenAIError(t *testing.T) {
	cases := []struct {
		status int
		want   llm.FailureKind
	}{
		{401, llm.FailureAuth},
		{429, llm.FailureRateLimited},
		{500, llm.FailureUnreachable},
	}

	for _, tc := range cases {
		err := &openai.APIError{HTTPStatusCode: tc.status}
		if got := classifyOpenAIError(err); got != tc.want {
			t.Errorf("status %d: expected %q, got %q", tc.status, tc.want, got)
		}
	}

	if got := classifyOpenAIError(errors.New("dial tcp: refused")); got != llm.FailureUnreachable {
		t.Errorf("transport error: expected unreachable, got %q", got)
	}
}

func TestExtractAssistantReply(t *testing.T) {
	generated := "System stuff\nUser: hi\nAssistant: hello!\nUser: ship?\nAssistant: we ship worldwide"
	if got := extractAssistantReply(generated); got != "we ship worldwide" {
		t.Errorf("Expected text after final marker, got %q", got)
	}

	if got := extractAssistantReply("no marker at all"); got != "no marker at all" {
		t.Errorf("Expected full text when marker absent, got %q", got)
	}
}
