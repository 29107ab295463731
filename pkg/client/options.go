package client

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// DefaultTimeout bounds every request unless WithTimeout says otherwise.
const DefaultTimeout = 30 * time.Second

type options struct {
	baseURL      string
	httpClient   *http.Client
	timeout      time.Duration
	tokenSource  oauth2.TokenSource
	userAgent    string
	organization string
	project      string
	logger       zerolog.Logger
	metrics      *Metrics
}

// Option configures a Client.
type Option func(*options)

// WithBaseURL points the client at an OpenAI compatible server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithHTTPClient supplies the underlying HTTP client. Its transport is wrapped
// for authentication and its timeout is replaced.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

// WithTokenSource replaces the static bearer token with a rotating source.
func WithTokenSource(source oauth2.TokenSource) Option {
	return func(o *options) { o.tokenSource = source }
}

func WithUserAgent(userAgent string) Option {
	return func(o *options) { o.userAgent = userAgent }
}

func WithOrganization(organization string) Option {
	return func(o *options) { o.organization = organization }
}

func WithProject(project string) Option {
	return func(o *options) { o.project = project }
}

// WithLogger enables debug logging of completed requests.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func WithMetrics(metrics *Metrics) Option {
	return func(o *options) { o.metrics = metrics }
}
