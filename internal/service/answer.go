package service

import (
	"context"
	"fmt"

	"hotel-ai-service/internal/models"
)

// RefusalAnswer is the fixed reply the synthesizer is instructed to produce
// when the retrieved information cannot answer the question.
const RefusalAnswer = "I'm sorry, I don't have that information available right now."

const answerPromptFmt = `You are a friendly hotel assistant. Answer the guest's question using ONLY the hotel information below and the conversation so far. Do not invent rooms, prices, dates or amenities that are not in the information.
If the information is not enough to answer, reply exactly: %q

Hotel information:
%s`

// answerTemperature favours fluent phrasing while the grounding prompt keeps
// the content pinned to the tool result.
const answerTemperature = 0.7

// AnswerSynthesizer produces the user-facing reply from the original
// question, the tool's factual result and the conversation history.
type AnswerSynthesizer struct {
	llm CompletionClient
}

// NewAnswerSynthesizer wires the completion client.
func NewAnswerSynthesizer(llm CompletionClient) *AnswerSynthesizer {
	return &AnswerSynthesizer{llm: llm}
}

// Answer runs the second completion of the turn. Unlike classification,
// a failure here is fatal for the turn and surfaces to the caller.
func (s *AnswerSynthesizer) Answer(ctx context.Context, token, question, toolResult string, history []models.ChatMessage) (string, error) {
	msgs := make([]models.ChatMessage, 0, len(history)+2)
	msgs = append(msgs, models.ChatMessage{
		Role:    RoleSystem,
		Content: fmt.Sprintf(answerPromptFmt, RefusalAnswer, toolResult),
	})
	msgs = append(msgs, history...)
	msgs = append(msgs, models.ChatMessage{Role: RoleUser, Content: question})

	reply, err := s.llm.Complete(ctx, token, msgs, answerTemperature)
	if err != nil {
		return "", fmt.Errorf("answer generation failed: %w", err)
	}
	return reply, nil
}
