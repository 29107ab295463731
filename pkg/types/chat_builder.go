package types

const chatRequestName = "chat completion request"

// ChatCompletionRequestBuilder accumulates the fields of a chat request.
// It is not safe for concurrent use.
type ChatCompletionRequestBuilder struct {
	model    string
	messages []Message
}

func NewChatCompletionRequestBuilder() *ChatCompletionRequestBuilder {
	return &ChatCompletionRequestBuilder{}
}

// Model sets the chat model ID.
func (b *ChatCompletionRequestBuilder) Model(model string) *ChatCompletionRequestBuilder {
	b.model = model
	return b
}

// Messages replaces the conversation.
func (b *ChatCompletionRequestBuilder) Messages(messages ...Message) *ChatCompletionRequestBuilder {
	b.messages = append([]Message(nil), messages...)
	return b
}

// Build validates the accumulated fields and returns the finished request.
// model and a non-empty message list are required.
func (b *ChatCompletionRequestBuilder) Build() (ChatCompletionRequest, error) {
	if b.model == "" {
		return ChatCompletionRequest{}, &MissingFieldError{Request: chatRequestName, Field: "model"}
	}
	if len(b.messages) == 0 {
		return ChatCompletionRequest{}, &MissingFieldError{Request: chatRequestName, Field: "messages"}
	}

	messages := make(Messages, len(b.messages))
	for i, m := range b.messages {
		messages[i] = copyMessage(m)
	}

	return ChatCompletionRequest{
		Messages: messages,
		Model:    b.model,
	}, nil
}

// copyMessage detaches the tool call slice of assistant messages so the
// finished request does not alias caller memory.
func copyMessage(m Message) Message {
	switch v := m.(type) {
	case AssistantMessage:
		if len(v.ToolCalls) > 0 {
			calls := make([]ToolCall, len(v.ToolCalls))
			for i, call := range v.ToolCalls {
				if call.Function != nil {
					fn := *call.Function
					call.Function = &fn
				}
				calls[i] = call
			}
			v.ToolCalls = calls
		}
		return v
	default:
		return m
	}
}
