package models

// Intent tags the classifier may emit. Anything the model returns outside
// this set is coerced to IntentGeneralQuestion.
const (
	IntentSpecificAvailability = "specific_availability"
	IntentGeneralQuestion      = "general_question"
)

// ChatMessage is one role-tagged turn of conversation history, in the shape
// of an OpenAI-style chat payload entry.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload for POST /chat.
type ChatRequest struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	History []ChatMessage `json:"history,omitempty"`
}

// ChatResponse is the reply envelope for POST /chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Intent is the structured record produced by the classifier for one turn.
// Parameters are pointers so "not supplied" and "empty" stay distinct.
type Intent struct {
	Intent     string `json:"intent"`
	Parameters struct {
		RoomNumber   *string `json:"room_number"`
		CheckInDate  *string `json:"check_in_date"`
		CheckOutDate *string `json:"check_out_date"`
	} `json:"parameters"`
}

// ChatLogEntry is the side-channel record of one conversational turn,
// matching the logging endpoint's contract.
type ChatLogEntry struct {
	UserInput  string `json:"userInput"`
	AIResponse string `json:"aiResponse"`
	Intent     string `json:"intent"`
}
