// Package client sends typed requests to an OpenAI compatible API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rogeecn/llm-sdk-go/pkg/types"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// Client executes requests built with package types. It is safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	headers    *HeaderBuilder
	logger     zerolog.Logger
	metrics    *Metrics
}

// New returns a client authenticating with token. An empty token sends no
// Authorization header.
func New(token string, opts ...Option) *Client {
	o := options{
		baseURL: types.DefaultBaseURL,
		timeout: DefaultTimeout,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	token = strings.TrimSpace(token)
	if o.tokenSource == nil && token != "" {
		o.tokenSource = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	}

	httpClient := &http.Client{}
	if o.httpClient != nil {
		copied := *o.httpClient
		httpClient = &copied
	}
	if o.tokenSource != nil {
		httpClient.Transport = &oauth2.Transport{
			Source: o.tokenSource,
			Base:   httpClient.Transport,
		}
	}
	if o.timeout > 0 {
		httpClient.Timeout = o.timeout
	}

	baseURL := strings.TrimSuffix(strings.TrimSpace(o.baseURL), "/")
	if baseURL == "" {
		baseURL = types.DefaultBaseURL
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		headers:    NewHeaderBuilder(o.userAgent, o.organization, o.project),
		logger:     o.logger,
		metrics:    o.metrics,
	}
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}

func (c *Client) ChatCompletion(ctx context.Context, req types.ChatCompletionRequest) (*types.ChatCompletionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp types.ChatCompletionResponse
	if err := c.Do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateImage(ctx context.Context, req types.ImageGenerationRequest) (*types.ImageGenerationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp types.ImageGenerationResponse
	if err := c.Do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Do sends req and decodes a successful response body into out.
func (c *Client) Do(ctx context.Context, req types.IntoRequest, out interface{}) error {
	httpReq, err := req.IntoRequest(c.baseURL)
	if err != nil {
		return err
	}

	body, err := c.Send(ctx, httpReq)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", httpReq.Endpoint.Name, err)
	}
	return nil
}

// Send executes a converted request and returns the raw body of a 2xx
// response. Other statuses yield *APIError.
func (c *Client) Send(ctx context.Context, req types.HTTPRequest) ([]byte, error) {
	name := req.Endpoint.Name

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", name, err)
	}
	headers, requestID := c.headers.Build()
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.observe(name, 0, time.Since(start))
		return nil, fmt.Errorf("%s: send request: %w", name, err)
	}
	defer resp.Body.Close()

	content, err := readBody(resp)
	elapsed := time.Since(start)
	c.metrics.observe(name, resp.StatusCode, elapsed)
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", name, err)
	}

	c.logger.Debug().
		Str("endpoint", name).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", elapsed).
		Msg("api request completed")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newAPIError(name, resp.StatusCode, content)
	}
	return content, nil
}
