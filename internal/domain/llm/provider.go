package llm

import "context"

// Role identifies the author of a chat message as seen by a provider.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn of conversation history handed to a provider.
type Message struct {
	Role    Role
	Content string
}

// Provider generates an assistant reply for a user message given prior
// conversation history. Implementations apply the shared history window
// and return a ProviderError for any backend failure.
type Provider interface {
	GenerateReply(ctx context.Context, history []Message, userMessage string) (string, error)
}
