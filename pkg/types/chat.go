package types

// ChatCompletionRequest is the body of POST /chat/completions. Build it with
// ChatCompletionRequestBuilder and treat the result as read-only.
type ChatCompletionRequest struct {
	// Messages is the conversation so far, oldest first.
	Messages Messages `json:"messages"`
	// Model is the ID of the chat model.
	Model string `json:"model"`
}

// Validate repeats the builder's required field checks. It is meant as a
// pre-send guard for values assembled without the builder.
func (r ChatCompletionRequest) Validate() error {
	if r.Model == "" {
		return &MissingFieldError{Request: chatRequestName, Field: "model"}
	}
	if len(r.Messages) == 0 {
		return &MissingFieldError{Request: chatRequestName, Field: "messages"}
	}
	return nil
}

type ChatCompletionResponse struct {
	ID                string       `json:"id"`
	Object            string       `json:"object"`
	Created           int64        `json:"created"`
	Model             string       `json:"model"`
	Choices           []ChatChoice `json:"choices"`
	Usage             Usage        `json:"usage"`
	SystemFingerprint string       `json:"system_fingerprint,omitempty"`
}

type ChatChoice struct {
	Index        int              `json:"index"`
	Message      AssistantMessage `json:"message"`
	FinishReason string           `json:"finish_reason"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// FirstContent returns the content of the first choice, or "" when the
// response has none.
func (r *ChatCompletionResponse) FirstContent() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}
