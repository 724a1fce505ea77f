package service

import (
	"context"
	"log"
	"time"

	"hotel-ai-service/internal/models"
)

// ChatService runs one conversational turn: classify the message, dispatch
// the matching tool, synthesize a grounded reply and record the turn on the
// side channel.
type ChatService interface {
	Chat(ctx context.Context, token, message string, history []models.ChatMessage) (string, error)
}

type chatService struct {
	classifier  *IntentClassifier
	dispatcher  *ToolDispatcher
	synthesizer *AnswerSynthesizer
	logger      *InteractionLogger
}

// NewChatService wires the pipeline stages.
func NewChatService(classifier *IntentClassifier, dispatcher *ToolDispatcher, synthesizer *AnswerSynthesizer, logger *InteractionLogger) ChatService {
	return &chatService{
		classifier:  classifier,
		dispatcher:  dispatcher,
		synthesizer: synthesizer,
		logger:      logger,
	}
}

// Chat executes the two completion calls strictly in sequence: the
// synthesizer depends on the tool result, which depends on the classified
// intent. Classification and tool failures degrade inside their stages;
// only a synthesizer failure aborts the turn.
func (s *chatService) Chat(ctx context.Context, token, message string, history []models.ChatMessage) (string, error) {
	intent := s.classifier.Classify(ctx, token, message, time.Now(), history)
	log.Printf("[Chat Service] resolved intent: %s", intent.Intent)

	toolResult := s.dispatcher.Dispatch(ctx, intent)

	reply, err := s.synthesizer.Answer(ctx, token, message, toolResult, history)
	if err != nil {
		return "", err
	}

	// Fire-and-forget; the reply does not wait on the side channel.
	s.logger.Log(models.ChatLogEntry{
		UserInput:  message,
		AIResponse: reply,
		Intent:     intent.Intent,
	})

	return reply, nil
}
