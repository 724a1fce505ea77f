package service

import (
	"context"

	"hotel-ai-service/internal/models"
)

// Message roles used in completion payloads.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// CompletionClient abstracts the generative completion endpoint: a list of
// role-tagged messages and a sampling temperature in, generated text out.
//
// token is the caller-supplied credential for the turn; providers that
// authenticate with service credentials are free to ignore it.
type CompletionClient interface {
	Complete(ctx context.Context, token string, msgs []models.ChatMessage, temperature float32) (string, error)
}
