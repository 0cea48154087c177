package llmprovider

import (
	"fmt"

	"github.com/rs/zerolog"

	"supportchat/internal/config"
	"supportchat/internal/domain/llm"
)

// New selects and constructs the configured reply provider. The choice is
// made once at startup; there is no per-request dispatch.
func New(cfg *config.Config, log zerolog.Logger) (llm.Provider, error) {
	if cfg.UseMockAI {
		log.Info().Msg("reply generation running in mock mode")
		return NewMockProvider(log), nil
	}

	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		return NewOpenAIProvider(cfg, log)
	case config.ProviderGemini:
		return NewGeminiProvider(cfg, log)
	case config.ProviderHuggingFace:
		return NewHuggingFaceProvider(cfg, log)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
