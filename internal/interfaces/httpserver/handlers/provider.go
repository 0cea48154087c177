package handlers

import (
	"github.com/rs/zerolog"

	domain "supportchat/internal/domain/chat"
)

// Provider wires HTTP handlers.
type Provider struct {
	Chat *ChatHandler
}

func NewProvider(service *domain.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Chat: NewChatHandler(service, log),
	}
}
