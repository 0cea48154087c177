package llmprovider

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"supportchat/internal/domain/llm"
)

const mockProviderName = "mock"

// MockProvider returns canned keyword-matched replies without any network
// calls. Used for demos and local development.
type MockProvider struct {
	delay time.Duration
	log   zerolog.Logger
}

// NewMockProvider constructs the mock provider with its simulated latency.
func NewMockProvider(log zerolog.Logger) *MockProvider {
	return &MockProvider{
		delay: time.Second,
		log:   log.With().Str("component", "mock-provider").Logger(),
	}
}

var _ llm.Provider = (*MockProvider)(nil)

// GenerateReply matches keywords in the user message against canned
// responses after a fixed simulated delay. It never fails except on
// context cancellation.
func (m *MockProvider) GenerateReply(ctx context.Context, _ []llm.Message, userMessage string) (string, error) {
	start := time.Now()
	if m.delay > 0 {
		select {
		case <-ctx.Done():
			observe(mockProviderName, start, ctx.Err())
			return "", llm.NewProviderError(mockProviderName, llm.FailureTimeout, ctx.Err())
		case <-time.After(m.delay):
		}
	}

	reply := cannedReply(userMessage)
	observe(mockProviderName, start, nil)
	return reply, nil
}

func cannedReply(userMessage string) string {
	msg := strings.ToLower(userMessage)

	switch {
	case strings.Contains(msg, "ship"):
		return "We offer free shipping on orders over $50! Standard shipping takes 5-7 business days, and express shipping (2-3 days) is available for $15. We ship to most locations worldwide."
	case strings.Contains(msg, "return") || strings.Contains(msg, "refund"):
		return "We accept returns within 30 days of purchase. Items must be unused and in original packaging. Refunds are processed within 5-10 business days after we receive your return."
	case strings.Contains(msg, "support") || strings.Contains(msg, "hours") || strings.Contains(msg, "contact"):
		return "Our customer support team is available Monday-Friday, 9 AM - 6 PM EST. You can reach us at support@example.com or call 1-800-123-4567. We aim to respond to all inquiries within 24 hours!"
	case strings.Contains(msg, "hello") || strings.Contains(msg, "hi") || strings.Contains(msg, "hey"):
		return "Hello! Welcome to our store! I'm here to help you with any questions about shipping, returns, support hours, or anything else. How can I assist you today?"
	default:
		return "Thanks for your question! I'm currently running in demo mode. In production, I would provide detailed answers about our shipping policies, return process, and support hours. Feel free to ask about these topics to see example responses!"
	}
}
