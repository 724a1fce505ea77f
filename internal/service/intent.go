package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"hotel-ai-service/internal/models"
	"hotel-ai-service/internal/utils"
)

// IntentClassifier maps a free-text guest utterance onto one of the two
// legal intents plus its extracted parameters, using a constrained
// temperature-0 completion.
type IntentClassifier struct {
	llm CompletionClient
}

// NewIntentClassifier wires the completion client.
func NewIntentClassifier(llm CompletionClient) *IntentClassifier {
	return &IntentClassifier{llm: llm}
}

const intentPromptFmt = `You are an intent classifier for a hotel assistant.
Classify the user's message into exactly one of these intents:
- "specific_availability": the user asks whether a particular room is free, possibly for a date range.
- "general_question": anything else about the hotel.

Respond with JSON only, no explanation, in exactly this shape:
{"intent": "<intent>", "parameters": {"room_number": <string or null>, "check_in_date": <string or null>, "check_out_date": <string or null>}}

Dates must be formatted as YYYY-MM-DD. Today's date is %s; resolve relative expressions like "next Friday" against it.`

// Classify returns the structured intent for message. It never fails the
// turn: any transport or parse problem falls back to general_question with
// empty parameters, so a broken classification cannot block a response.
func (c *IntentClassifier) Classify(ctx context.Context, token, message string, now time.Time, history []models.ChatMessage) models.Intent {
	msgs := make([]models.ChatMessage, 0, len(history)+2)
	msgs = append(msgs, models.ChatMessage{
		Role:    RoleSystem,
		Content: fmt.Sprintf(intentPromptFmt, now.Format("2006-01-02")),
	})
	msgs = append(msgs, history...)
	msgs = append(msgs, models.ChatMessage{Role: RoleUser, Content: message})

	fallback := models.Intent{Intent: models.IntentGeneralQuestion}

	raw, err := c.llm.Complete(ctx, token, msgs, 0)
	if err != nil {
		log.Printf("[Intent Classifier] completion failed, falling back to general_question: %v", err)
		return fallback
	}

	var intent models.Intent
	if err := utils.ParseModelJSON(raw, &intent); err != nil {
		log.Printf("[Intent Classifier] unparseable output, falling back to general_question: %v", err)
		return fallback
	}

	switch intent.Intent {
	case models.IntentSpecificAvailability, models.IntentGeneralQuestion:
		return intent
	default:
		log.Printf("[Intent Classifier] unknown intent %q, falling back to general_question", intent.Intent)
		return fallback
	}
}
