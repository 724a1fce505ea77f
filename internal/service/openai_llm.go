package service

import (
	"context"
	"fmt"
	"math"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"hotel-ai-service/internal/models"
)

// OpenAILLM talks to any OpenAI-compatible chat completion endpoint
// (GitHub Models by default). The credential arrives per turn from the
// caller, so a lightweight client is built per call rather than held.
type OpenAILLM struct {
	baseURL   string
	model     string
	maxTokens int
	limiter   *rate.Limiter
}

// NewOpenAILLM creates the OpenAI-style completion client.
func NewOpenAILLM(baseURL, model string) *OpenAILLM {
	return &OpenAILLM{
		baseURL:   baseURL,
		model:     model,
		maxTokens: 1024,
		// Keep completion traffic inside upstream quota: 3 req/s, burst of 5.
		limiter: rate.NewLimiter(rate.Limit(3), 5),
	}
}

// Complete sends one chat completion request and returns the generated text.
func (l *OpenAILLM) Complete(ctx context.Context, token string, msgs []models.ChatMessage, temperature float32) (string, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return "", err
	}

	cfg := openai.DefaultConfig(token)
	if l.baseURL != "" {
		cfg.BaseURL = l.baseURL
	}
	client := openai.NewClientWithConfig(cfg)

	messages := make([]openai.ChatCompletionMessage, 0, len(msgs))
	for _, m := range msgs {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	// go-openai omits a zero temperature from the payload, which the API
	// then defaults to 1. Substitute the smallest representable value so
	// "deterministic" requests stay deterministic.
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       l.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   l.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
