package types

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// DefaultBaseURL is the root of the OpenAI REST API.
const DefaultBaseURL = "https://api.openai.com/v1"

// Endpoint is the fixed HTTP route of a request type.
type Endpoint struct {
	Name   string
	Method string
	Path   string
}

var (
	ChatCompletionsEndpoint  = Endpoint{Name: "chat_completions", Method: http.MethodPost, Path: "/chat/completions"}
	ImageGenerationsEndpoint = Endpoint{Name: "image_generations", Method: http.MethodPost, Path: "/images/generations"}
)

// HTTPRequest is a transport level request: method, absolute URL and JSON body.
type HTTPRequest struct {
	Endpoint Endpoint
	Method   string
	URL      string
	Body     []byte
}

// IntoRequest is implemented by every finished request type.
type IntoRequest interface {
	IntoRequest(baseURL string) (HTTPRequest, error)
}

func (r ChatCompletionRequest) IntoRequest(baseURL string) (HTTPRequest, error) {
	return newHTTPRequest(ChatCompletionsEndpoint, baseURL, r)
}

func (r ImageGenerationRequest) IntoRequest(baseURL string) (HTTPRequest, error) {
	return newHTTPRequest(ImageGenerationsEndpoint, baseURL, r)
}

func newHTTPRequest(endpoint Endpoint, baseURL string, payload interface{}) (HTTPRequest, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return HTTPRequest{}, fmt.Errorf("%s: encode request: %w", endpoint.Name, err)
	}

	return HTTPRequest{
		Endpoint: endpoint,
		Method:   endpoint.Method,
		URL:      endpoint.URL(baseURL),
		Body:     body,
	}, nil
}

// URL joins the endpoint path onto baseURL. An empty baseURL means
// DefaultBaseURL.
func (e Endpoint) URL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return strings.TrimSuffix(baseURL, "/") + e.Path
}
