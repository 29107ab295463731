package types

import (
	"net/http"
	"testing"
)

func TestIntoRequestRouting(t *testing.T) {
	chat, err := NewChatCompletionRequestBuilder().Model("gpt-4o").Messages(UserMessage{Content: "hi"}).Build()
	if err != nil {
		t.Fatalf("chat Build() error = %v", err)
	}
	image, err := NewImageGenerationRequest("a red fox")
	if err != nil {
		t.Fatalf("image Build() error = %v", err)
	}

	tests := []struct {
		name    string
		req     IntoRequest
		baseURL string
		wantURL string
		wantEP  Endpoint
	}{
		{name: "chat default base", req: chat, baseURL: "", wantURL: "https://api.openai.com/v1/chat/completions", wantEP: ChatCompletionsEndpoint},
		{name: "image default base", req: image, baseURL: "", wantURL: "https://api.openai.com/v1/images/generations", wantEP: ImageGenerationsEndpoint},
		{name: "chat custom base", req: chat, baseURL: "http://127.0.0.1:8080/v1/", wantURL: "http://127.0.0.1:8080/v1/chat/completions", wantEP: ChatCompletionsEndpoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.IntoRequest(tt.baseURL)
			if err != nil {
				t.Fatalf("IntoRequest() error = %v", err)
			}
			if got.Method != http.MethodPost {
				t.Fatalf("Method = %s, want POST", got.Method)
			}
			if got.URL != tt.wantURL {
				t.Fatalf("URL = %q, want %q", got.URL, tt.wantURL)
			}
			if got.Endpoint != tt.wantEP {
				t.Fatalf("Endpoint = %+v, want %+v", got.Endpoint, tt.wantEP)
			}
		})
	}
}

func TestIntoRequestBodyMatchesMarshal(t *testing.T) {
	req, err := NewImageGenerationRequestBuilder().
		Prompt("draw a cute caterpillar").
		Quality(ImageQualityHD).
		Style(ImageStyleVivid).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	got, err := req.IntoRequest("")
	if err != nil {
		t.Fatalf("IntoRequest() error = %v", err)
	}
	if string(got.Body) != string(mustMarshal(t, req)) {
		t.Fatalf("Body = %s, want %s", got.Body, mustMarshal(t, req))
	}
}

func TestIntoRequestEncodeFailure(t *testing.T) {
	req := ImageGenerationRequest{Prompt: "p", Style: Some(ImageStyle(42))}
	if _, err := req.IntoRequest(""); err == nil {
		t.Fatal("IntoRequest() error = nil, want encode error")
	}
}
