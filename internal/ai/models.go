package ai

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one conversational turn sent to the model.
type Message struct {
	Role    Role
	Content string
}

// Prompt is a single completion request: an optional system instruction plus the turns.
type Prompt struct {
	// Operation labels the request for logs and metrics ("itinerary", "ask").
	Operation string

	System   string
	Messages []Message
}

// UserPrompt builds a single-turn prompt with no system instruction.
func UserPrompt(operation, text string) Prompt {
	return Prompt{
		Operation: operation,
		Messages:  []Message{{Role: RoleUser, Content: text}},
	}
}
