package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"

	"hotel-ai-service/internal/models"
)

// VertexLLM implements CompletionClient using Google's Vertex AI. It
// authenticates with service credentials, so the per-turn token is ignored.
type VertexLLM struct {
	client *genai.Client
	model  string
}

// NewVertexLLM creates a new Vertex AI completion client.
func NewVertexLLM(projectID, location, model string) (*VertexLLM, error) {
	ctx := context.Background()

	// Get credentials from environment or service account file
	var opts []option.ClientOption
	if creds := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); creds != "" {
		opts = append(opts, option.WithCredentialsFile(creds))
	}

	client, err := genai.NewClient(ctx, projectID, location, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vertex AI client: %w", err)
	}

	return &VertexLLM{client: client, model: model}, nil
}

// Complete flattens the role-tagged messages into a single prompt and runs
// one generation. Vertex has no separate system role in this API surface,
// so system content leads the prompt.
func (l *VertexLLM) Complete(ctx context.Context, _ string, msgs []models.ChatMessage, temperature float32) (string, error) {
	model := l.client.GenerativeModel(l.model)
	model.SetTemperature(temperature)

	var b strings.Builder
	for _, m := range msgs {
		switch m.Role {
		case RoleSystem:
			b.WriteString(m.Content)
			b.WriteString("\n\n")
		case RoleAssistant:
			b.WriteString("Assistant: " + m.Content + "\n")
		default:
			b.WriteString("User: " + m.Content + "\n")
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(b.String()))
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response generated")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type")
	}
	return string(text), nil
}

// Close closes the underlying Vertex AI client.
func (l *VertexLLM) Close() error {
	return l.client.Close()
}
